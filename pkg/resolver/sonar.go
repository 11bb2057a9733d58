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

package resolver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/bindwatch/bindwatch/pkg/logger"
	"github.com/bindwatch/bindwatch/pkg/models"
)

var (
	errUnexpectedStatusCode = errors.New("unexpected status code")
	errNoToolCall           = errors.New("reasoning response contained no tool call")
)

// SonarResolver calls a Sonar-style reasoning API that answers by naming one
// of two tools: update_config or change_server.
type SonarResolver struct {
	endpoint string
	apiKey   string
	client   *http.Client
	logger   logger.Logger
}

var _ ExternalResolver = (*SonarResolver)(nil)

// NewSonarResolver builds the reasoning client. The per-call deadline comes
// from the caller's context; the Resolver wraps every call in its timeout.
func NewSonarResolver(cfg *models.ReasonerConfig, log logger.Logger) *SonarResolver {
	return &SonarResolver{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		client:   &http.Client{},
		logger:   log,
	}
}

type toolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

type reasoningRequest struct {
	Prompt     string           `json:"prompt"`
	Tools      []toolDefinition `json:"tools"`
	ToolChoice string           `json:"tool_choice"`
}

type reasoningResponse struct {
	ToolCalls []struct {
		Name string `json:"name"`
	} `json:"tool_calls"`
}

func (s *SonarResolver) Resolve(ctx context.Context, req *models.ResolveRequest) (Action, error) {
	body, err := json.Marshal(reasoningRequest{
		Prompt:     buildPrompt(req),
		Tools:      toolDefinitions(),
		ToolChoice: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode reasoning request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	httpReq.Header.Set("Content-Type", "application/json")

	if s.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", err
	}

	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.logger.Debug().Err(err).Msg("Failed to close reasoning response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", errUnexpectedStatusCode, resp.StatusCode)
	}

	var decoded reasoningResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode reasoning response: %w", err)
	}

	if len(decoded.ToolCalls) == 0 {
		return "", errNoToolCall
	}

	// Unknown tool names surface as-is; the Resolver treats them as a
	// fallback trigger.
	return Action(decoded.ToolCalls[0].Name), nil
}

func buildPrompt(req *models.ResolveRequest) string {
	status := "not responding"
	if req.ServerAlive {
		status = "live"
	}

	return fmt.Sprintf(
		"You manage device-to-server bindings. Device %s reported server %s twice "+
			"within the duplicate window (duplicate=%t). The server is currently %s. "+
			"If the server is live, call update_config; if it is not responding, call change_server.",
		req.DeviceID, req.ServerIP, req.IsDuplicate, status)
}

func toolDefinitions() []toolDefinition {
	params := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"device_id": map[string]any{"type": "string"},
			"server_ip": map[string]any{"type": "string"},
		},
		"required": []string{"device_id", "server_ip"},
	}

	return []toolDefinition{
		{
			Name:        string(ActionReconfigure),
			Description: "Update the configuration for a device when the server is live",
			Parameters:  params,
		},
		{
			Name:        string(ActionSwitchServer),
			Description: "Change the server for a device when the current server is not live",
			Parameters:  params,
		},
	}
}
