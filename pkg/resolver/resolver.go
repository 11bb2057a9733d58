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

// Package resolver turns a duplicate report plus a probe outcome into a
// recommendation, optionally deferring to an external reasoning service.
package resolver

import (
	"context"
	"time"

	"github.com/bindwatch/bindwatch/pkg/logger"
	"github.com/bindwatch/bindwatch/pkg/models"
)

// Action is the decision named by the external reasoning collaborator.
type Action string

const (
	// ActionReconfigure recommends updating the device configuration to
	// match the (live) server.
	ActionReconfigure Action = "update_config"

	// ActionSwitchServer recommends migrating the device to a different
	// server.
	ActionSwitchServer Action = "change_server"
)

//go:generate mockgen -destination=mock_resolver.go -package=resolver github.com/bindwatch/bindwatch/pkg/resolver ExternalResolver

// ExternalResolver is the optional reasoning collaborator. It is stateless
// and shared across keys.
type ExternalResolver interface {
	Resolve(ctx context.Context, req *models.ResolveRequest) (Action, error)
}

// Resolver applies the deterministic decision table, consulting the external
// collaborator first when one is configured. Resolve never returns an error:
// a collaborator failure of any kind falls back to the table.
type Resolver struct {
	external ExternalResolver
	timeout  time.Duration
	logger   logger.Logger
}

// New creates a resolver. external may be nil, in which case decisions come
// from the deterministic table alone. timeout bounds each collaborator call.
func New(external ExternalResolver, timeout time.Duration, log logger.Logger) *Resolver {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Resolver{
		external: external,
		timeout:  timeout,
		logger:   log,
	}
}

// Resolve maps (is_duplicate, server_alive) to a recommendation.
func (r *Resolver) Resolve(ctx context.Context, req *models.ResolveRequest) models.Resolution {
	if !req.IsDuplicate {
		return models.Resolution{}
	}

	if r.external != nil {
		if res, ok := r.resolveExternal(ctx, req); ok {
			return res
		}
	}

	return Deterministic(req)
}

func (r *Resolver) resolveExternal(ctx context.Context, req *models.ResolveRequest) (models.Resolution, bool) {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	action, err := r.external.Resolve(callCtx, req)
	if err != nil {
		r.logger.Warn().
			Str("device_id", req.DeviceID).
			Str("server_ip", req.ServerIP).
			Err(err).
			Msg("External resolver failed, falling back to deterministic table")

		return models.Resolution{}, false
	}

	switch action {
	case ActionReconfigure:
		return models.Resolution{ChangeConfig: true}, true
	case ActionSwitchServer:
		return models.Resolution{ChangeServer: true}, true
	default:
		r.logger.Warn().
			Str("action", string(action)).
			Msg("External resolver returned an unrecognized action, falling back to deterministic table")

		return models.Resolution{}, false
	}
}

// Deterministic applies the rule table: a duplicate report against a live
// server recommends a configuration change; against a dead server it
// recommends switching servers. Non-duplicates resolve to nothing.
func Deterministic(req *models.ResolveRequest) models.Resolution {
	if !req.IsDuplicate {
		return models.Resolution{}
	}

	if req.ServerAlive {
		return models.Resolution{ChangeConfig: true}
	}

	return models.Resolution{ChangeServer: true}
}
