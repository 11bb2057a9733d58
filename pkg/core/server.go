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

package core

import (
	"context"
	"errors"
	"time"

	"github.com/bindwatch/bindwatch/pkg/db"
	"github.com/bindwatch/bindwatch/pkg/logger"
	"github.com/bindwatch/bindwatch/pkg/models"
	"github.com/bindwatch/bindwatch/pkg/probe"
)

var (
	// ErrEmptyDeviceID indicates a report or lookup with no device ID.
	ErrEmptyDeviceID = errors.New("device_id must be non-empty")

	// ErrEmptyServerIP indicates a report or lookup with no server address.
	ErrEmptyServerIP = errors.New("server_ip must be non-empty")
)

const defaultDuplicateWindow = 5 * time.Minute

// Server is the decision engine. It owns the duplicate-window check and the
// per-key serialization of the read-decide-write sequence; the store, prober
// and resolver are injected at construction and live for the process.
type Server struct {
	store    db.Service
	prober   probe.Prober
	resolver DecisionResolver
	clock    Clock
	window   time.Duration
	locks    *keyLock
	logger   logger.Logger
}

// ServerOption customizes a Server.
type ServerOption func(*Server)

// WithClock replaces the wall clock, for tests.
func WithClock(c Clock) ServerOption {
	return func(s *Server) {
		s.clock = c
	}
}

// WithDuplicateWindow overrides the default 5-minute duplicate window.
func WithDuplicateWindow(window time.Duration) ServerOption {
	return func(s *Server) {
		if window > 0 {
			s.window = window
		}
	}
}

// NewServer creates the decision engine.
func NewServer(store db.Service, prober probe.Prober, res DecisionResolver, log logger.Logger, opts ...ServerOption) *Server {
	s := &Server{
		store:    store,
		prober:   prober,
		resolver: res,
		clock:    realClock{},
		window:   defaultDuplicateWindow,
		locks:    newKeyLock(),
		logger:   log,
	}

	for _, o := range opts {
		o(s)
	}

	return s
}

// SubmitReport records one connectivity report and returns the current
// recommendation for the key. A first report (or one arriving at or after the
// window boundary) produces a pending record with both flags false; a report
// strictly inside the window escalates: the server is probed, the resolver
// decides, and the record is overwritten with the resolved flags.
//
// Only store failures surface as errors; probe and resolver failures are
// absorbed by their components.
func (s *Server) SubmitReport(ctx context.Context, deviceID, serverIP string) (*models.DecisionRecord, error) {
	if err := validateKey(deviceID, serverIP); err != nil {
		return nil, err
	}

	// One critical section per key: two near-simultaneous first reports must
	// not both observe "no duplicate".
	unlock := s.locks.lock(deviceID + "\x00" + serverIP)
	defer unlock()

	now := s.clock.Now()

	existing, err := s.store.GetDecision(ctx, deviceID, serverIP)

	switch {
	case errors.Is(err, db.ErrDecisionNotFound):
		return s.recordPending(ctx, deviceID, serverIP, now)
	case err != nil:
		return nil, err
	case now.Sub(existing.LastReportAt) < s.window:
		// Strictly inside the window: escalate.
		return s.resolveDuplicate(ctx, deviceID, serverIP, now)
	default:
		// At or past the boundary the prior report no longer qualifies;
		// treat as a fresh first report.
		return s.recordPending(ctx, deviceID, serverIP, now)
	}
}

// GetLatestDecision returns the current record for the key, or
// db.ErrDecisionNotFound when none exists.
func (s *Server) GetLatestDecision(ctx context.Context, deviceID, serverIP string) (*models.DecisionRecord, error) {
	if err := validateKey(deviceID, serverIP); err != nil {
		return nil, err
	}

	return s.store.GetDecision(ctx, deviceID, serverIP)
}

// ProbeLiveness runs one standalone liveness check against an address.
func (s *Server) ProbeLiveness(ctx context.Context, serverIP string) bool {
	return s.prober.IsAlive(ctx, serverIP)
}

func (s *Server) recordPending(ctx context.Context, deviceID, serverIP string, now time.Time) (*models.DecisionRecord, error) {
	rec := &models.DecisionRecord{
		DeviceID:     deviceID,
		ServerIP:     serverIP,
		LastReportAt: now,
	}

	if err := s.store.UpsertDecision(ctx, rec); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("device_id", deviceID).
		Str("server_ip", serverIP).
		Int64("request_id", rec.RequestID).
		Msg("Recorded pending report, waiting for a duplicate inside the window")

	return rec, nil
}

func (s *Server) resolveDuplicate(ctx context.Context, deviceID, serverIP string, now time.Time) (*models.DecisionRecord, error) {
	alive := s.prober.IsAlive(ctx, serverIP)

	res := s.resolver.Resolve(ctx, &models.ResolveRequest{
		DeviceID:    deviceID,
		ServerIP:    serverIP,
		ServerAlive: alive,
		IsDuplicate: true,
	})

	rec := &models.DecisionRecord{
		DeviceID:     deviceID,
		ServerIP:     serverIP,
		LastReportAt: now,
		ChangeConfig: res.ChangeConfig,
		ChangeServer: res.ChangeServer,
	}

	if err := s.store.UpsertDecision(ctx, rec); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("device_id", deviceID).
		Str("server_ip", serverIP).
		Bool("server_alive", alive).
		Bool("change_config", rec.ChangeConfig).
		Bool("change_server", rec.ChangeServer).
		Int64("request_id", rec.RequestID).
		Msg("Resolved duplicate report")

	return rec, nil
}

func validateKey(deviceID, serverIP string) error {
	if deviceID == "" {
		return ErrEmptyDeviceID
	}

	if serverIP == "" {
		return ErrEmptyServerIP
	}

	return nil
}
