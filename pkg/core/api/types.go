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

package api

import (
	"time"

	"github.com/bindwatch/bindwatch/pkg/models"
)

// ReportRequest is the body of POST /api/reports.
type ReportRequest struct {
	DeviceID string `json:"device_id"`
	ServerIP string `json:"server_ip"`
}

// DecisionResponse is the structured recommendation payload. Callers consume
// the two flags directly; there is no text to parse.
type DecisionResponse struct {
	DeviceID     string    `json:"device_id"`
	ServerIP     string    `json:"server_ip"`
	ChangeConfig bool      `json:"change_config"`
	ChangeServer bool      `json:"change_server"`
	Timestamp    time.Time `json:"timestamp"`
}

// PingResponse is the body of GET /api/ping/{server_ip}.
type PingResponse struct {
	ServerIP string `json:"server_ip"`
	Alive    bool   `json:"alive"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func decisionResponseFrom(rec *models.DecisionRecord) DecisionResponse {
	return DecisionResponse{
		DeviceID:     rec.DeviceID,
		ServerIP:     rec.ServerIP,
		ChangeConfig: rec.ChangeConfig,
		ChangeServer: rec.ChangeServer,
		Timestamp:    rec.LastReportAt,
	}
}
