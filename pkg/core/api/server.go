/*
 * Copyright 2026 Bindwatch Contributors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package api provides the HTTP API server for bindwatch.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bindwatch/bindwatch/pkg/core"
	"github.com/bindwatch/bindwatch/pkg/db"
	bwhttp "github.com/bindwatch/bindwatch/pkg/http"
	"github.com/bindwatch/bindwatch/pkg/logger"
	"github.com/bindwatch/bindwatch/pkg/models"
)

// DecisionService is the engine surface the API server needs.
type DecisionService interface {
	SubmitReport(ctx context.Context, deviceID, serverIP string) (*models.DecisionRecord, error)
	GetLatestDecision(ctx context.Context, deviceID, serverIP string) (*models.DecisionRecord, error)
	ProbeLiveness(ctx context.Context, serverIP string) bool
}

// APIServer exposes the decision engine over HTTP.
type APIServer struct {
	engine DecisionService
	router *mux.Router
	srv    *http.Server
	apiKey string
	logger logger.Logger
}

// Option customizes an APIServer.
type Option func(*APIServer)

// WithAPIKey protects the /api subtree with a shared key.
func WithAPIKey(key string) Option {
	return func(s *APIServer) {
		s.apiKey = key
	}
}

// NewAPIServer creates a new API server instance around the decision engine.
func NewAPIServer(engine DecisionService, log logger.Logger, options ...Option) *APIServer {
	s := &APIServer{
		engine: engine,
		router: mux.NewRouter(),
		logger: log,
	}

	for _, o := range options {
		o(s)
	}

	s.setupRoutes()

	return s
}

func (s *APIServer) setupRoutes() {
	s.router.Use(bwhttp.CommonMiddleware(s.logger))

	// Health stays outside the API key check so load balancers can reach it.
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")

	// mux skips Use middleware when a path matches but the method does not,
	// so CORS preflight needs its own matcher; the common middleware answers
	// it before this handler runs.
	s.router.PathPrefix("/").Methods(http.MethodOptions).
		HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

	protected := s.router.PathPrefix("/api").Subrouter()
	protected.Use(bwhttp.APIKeyMiddleware(s.apiKey, s.logger))
	protected.HandleFunc("/reports", s.handleSubmitReport).Methods("POST")
	protected.HandleFunc("/decisions/{device_id}/{server_ip}", s.handleGetDecision).Methods("GET")
	protected.HandleFunc("/ping/{server_ip}", s.handlePing).Methods("GET")
}

// Router returns the configured handler, for tests.
func (s *APIServer) Router() http.Handler {
	return s.router
}

const (
	defaultReadTimeout    = 10 * time.Second
	defaultWriteTimeout   = 60 * time.Second // submit may wait on probe + reasoning
	defaultIdleTimeout    = 60 * time.Second
	defaultRequestTimeout = 60 * time.Second
)

// Start starts the API server on the specified address and blocks until the
// listener fails or Shutdown is called.
func (s *APIServer) Start(addr string) error {
	s.srv = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	return s.srv.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the listener.
func (s *APIServer) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}

	return s.srv.Shutdown(ctx)
}

// @Summary Submit a connectivity report
// @Description Records a device report about its bound server and returns the current recommendation
// @Accept json
// @Produce json
// @Success 200 {object} DecisionResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 503 {object} models.ErrorResponse "Record store unavailable"
// @Router /api/reports [post]
func (s *APIServer) handleSubmitReport(w http.ResponseWriter, r *http.Request) {
	var req ReportRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	rec, err := s.engine.SubmitReport(ctx, req.DeviceID, req.ServerIP)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	s.writeJSON(w, decisionResponseFrom(rec))
}

// @Summary Get the latest decision
// @Description Returns the most recent recommendation for a (device, server) pair
// @Produce json
// @Success 200 {object} DecisionResponse
// @Failure 404 {object} models.ErrorResponse "No record for the key"
// @Router /api/decisions/{device_id}/{server_ip} [get]
func (s *APIServer) handleGetDecision(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	rec, err := s.engine.GetLatestDecision(r.Context(), vars["device_id"], vars["server_ip"])
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	s.writeJSON(w, decisionResponseFrom(rec))
}

// @Summary Probe a server
// @Description Runs one liveness check against the given address
// @Produce json
// @Success 200 {object} PingResponse
// @Router /api/ping/{server_ip} [get]
func (s *APIServer) handlePing(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serverIP := vars["server_ip"]

	alive := s.engine.ProbeLiveness(r.Context(), serverIP)

	s.writeJSON(w, PingResponse{ServerIP: serverIP, Alive: alive})
}

func (s *APIServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, HealthResponse{Status: "OK"})
}

func (s *APIServer) writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrEmptyDeviceID), errors.Is(err, core.ErrEmptyServerIP):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, db.ErrDecisionNotFound):
		s.writeError(w, http.StatusNotFound, "no data found for the specified device and server")
	default:
		s.logger.Error().Err(err).Msg("Record store failure")
		s.writeError(w, http.StatusServiceUnavailable, "record store unavailable, retry later")
	}
}

func (s *APIServer) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error().Err(err).Msg("Error encoding response")
	}
}

func (s *APIServer) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(models.ErrorResponse{Message: message, Status: status}); err != nil {
		s.logger.Error().Err(err).Msg("Error encoding error response")
	}
}
