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

// Package app boots the bindwatch core service.
package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bindwatch/bindwatch/pkg/core"
	"github.com/bindwatch/bindwatch/pkg/core/api"
	"github.com/bindwatch/bindwatch/pkg/db"
	"github.com/bindwatch/bindwatch/pkg/lifecycle"
	"github.com/bindwatch/bindwatch/pkg/probe"
	"github.com/bindwatch/bindwatch/pkg/resolver"
)

const shutdownTimeout = 10 * time.Second

// Options contains runtime configuration derived from CLI flags.
type Options struct {
	ConfigPath string
}

// Run boots the core service using the provided options and blocks until the
// process receives SIGINT or SIGTERM.
func Run(ctx context.Context, opts Options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := core.LoadConfig(ctx, opts.ConfigPath)
	if err != nil {
		return err
	}

	mainLogger, err := lifecycle.CreateComponentLogger("core", cfg.Logging)
	if err != nil {
		return err
	}

	// The store is opened once here and closed at shutdown; nothing reopens
	// it per call.
	store, err := db.NewService(ctx, &cfg.Database, mainLogger)
	if err != nil {
		return err
	}

	defer func() {
		if err := store.Close(); err != nil {
			mainLogger.Error().Err(err).Msg("Error closing record store")
		}
	}()

	prober, err := probe.NewProber(&cfg.Probe, mainLogger)
	if err != nil {
		return err
	}

	var external resolver.ExternalResolver
	if cfg.Reasoner.Enabled {
		external = resolver.NewSonarResolver(&cfg.Reasoner, mainLogger)

		mainLogger.Info().
			Str("endpoint", cfg.Reasoner.Endpoint).
			Msg("External reasoning resolver enabled")
	}

	res := resolver.New(external, time.Duration(cfg.Reasoner.Timeout), mainLogger)

	engine := core.NewServer(store, prober, res, mainLogger,
		core.WithDuplicateWindow(time.Duration(cfg.DuplicateWindow)))

	apiServer := api.NewAPIServer(engine, mainLogger, api.WithAPIKey(cfg.APIKey))

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go func() {
		mainLogger.Info().
			Str("listen_addr", cfg.ListenAddr).
			Msg("Starting HTTP API server")

		if err := apiServer.Start(cfg.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-sigCtx.Done():
	}

	mainLogger.Info().Msg("Shutdown signal received, draining requests")

	drainCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := apiServer.Shutdown(drainCtx); err != nil {
		return err
	}

	mainLogger.Info().Msg("Shutdown complete")

	return nil
}
