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

// Package probe implements single-shot, bounded-timeout liveness checks.
package probe

import (
	"context"
	"fmt"

	"github.com/bindwatch/bindwatch/pkg/logger"
	"github.com/bindwatch/bindwatch/pkg/models"
)

//go:generate mockgen -destination=mock_probe.go -package=probe github.com/bindwatch/bindwatch/pkg/probe Prober

// Prober sends one liveness check to a target address. A probe failure of any
// kind (timeout, unreachable host, malformed address) is reported as not
// alive, never as an error: for this system, failing to reach a server is
// operationally equivalent to the server being down.
type Prober interface {
	IsAlive(ctx context.Context, address string) bool
}

// NewProber builds the prober selected by the configuration.
func NewProber(cfg *models.ProbeConfig, log logger.Logger) (Prober, error) {
	switch cfg.Mode {
	case models.ProbeModeICMP:
		return NewICMPProber(cfg, log), nil
	case models.ProbeModeTCP:
		return NewTCPProber(cfg, log), nil
	default:
		return nil, fmt.Errorf("unknown probe mode %q", cfg.Mode) //nolint:err113 // startup only
	}
}
