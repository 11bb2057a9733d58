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

// Package models contains the shared types exchanged between the bindwatch
// engine, its stores, and the HTTP API.
package models

import "time"

// DecisionRecord is the single persisted entity: the latest recommendation
// state for one (device, server) binding. At most one record exists per key;
// every resolved report overwrites the flags and timestamp in place.
type DecisionRecord struct {
	DeviceID     string    `json:"device_id"`
	ServerIP     string    `json:"server_ip"`
	LastReportAt time.Time `json:"timestamp"`
	ChangeConfig bool      `json:"change_config"`
	ChangeServer bool      `json:"change_server"`
	RequestID    int64     `json:"request_id,omitempty"` // monotonic per key, diagnostics only
}

// Resolved reports whether the record has been escalated past the initial
// pending state. A pending record has both flags false; a resolved record has
// exactly one flag set.
func (r *DecisionRecord) Resolved() bool {
	return r.ChangeConfig || r.ChangeServer
}

// Report is a single device submission. It is consumed once per call and is
// never persisted beyond the record it creates or updates.
type Report struct {
	DeviceID   string    `json:"device_id"`
	ServerIP   string    `json:"server_ip"`
	ReceivedAt time.Time `json:"received_at"`
}

// ResolveRequest carries the inputs the resolver needs to turn a duplicate
// report plus a probe outcome into a recommendation.
type ResolveRequest struct {
	DeviceID    string `json:"device_id"`
	ServerIP    string `json:"server_ip"`
	ServerAlive bool   `json:"server_alive"`
	IsDuplicate bool   `json:"is_duplicate"`
}

// Resolution is the recommendation pair. Once a record is resolved exactly one
// of the two flags is true: ChangeConfig means "update local configuration to
// match this server", ChangeServer means "migrate to a different server".
type Resolution struct {
	ChangeConfig bool `json:"change_config"`
	ChangeServer bool `json:"change_server"`
}

// ErrorResponse is the JSON error body returned by the HTTP API.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}
