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

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "duration string", input: `"5m"`, want: 5 * time.Minute},
		{name: "seconds string", input: `"2s"`, want: 2 * time.Second},
		{name: "number is nanoseconds", input: `300000000000`, want: 5 * time.Minute},
		{name: "invalid string", input: `"five minutes"`, wantErr: true},
		{name: "wrong type", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration

			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDurationMarshalRoundtrip(t *testing.T) {
	out, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(out))

	var back Duration

	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, Duration(90*time.Second), back)
}

func validConfig() CoreServiceConfig {
	return CoreServiceConfig{ListenAddr: ":8090"}
}

func TestValidateAppliesDefaults(t *testing.T) {
	cfg := validConfig()

	require.NoError(t, cfg.Validate())

	assert.Equal(t, DBTypeMemory, cfg.Database.Type)
	assert.Equal(t, ProbeModeICMP, cfg.Probe.Mode)
	assert.Equal(t, 5*time.Minute, time.Duration(cfg.DuplicateWindow))
	assert.Equal(t, 2*time.Second, time.Duration(cfg.Probe.Timeout))
	assert.Equal(t, 30*time.Second, time.Duration(cfg.Reasoner.Timeout))
	assert.NotNil(t, cfg.Logging)
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CoreServiceConfig)
	}{
		{name: "missing listen address", mutate: func(c *CoreServiceConfig) { c.ListenAddr = "" }},
		{name: "unknown database type", mutate: func(c *CoreServiceConfig) { c.Database.Type = "sqlite" }},
		{name: "postgres without host", mutate: func(c *CoreServiceConfig) {
			c.Database.Type = DBTypePostgres
			c.Database.Database = "bindwatch"
		}},
		{name: "postgres without database name", mutate: func(c *CoreServiceConfig) {
			c.Database.Type = DBTypePostgres
			c.Database.Host = "localhost"
		}},
		{name: "nats without url", mutate: func(c *CoreServiceConfig) { c.Database.Type = DBTypeNATS }},
		{name: "unknown probe mode", mutate: func(c *CoreServiceConfig) { c.Probe.Mode = "udp" }},
		{name: "tcp probe without port", mutate: func(c *CoreServiceConfig) { c.Probe.Mode = ProbeModeTCP }},
		{name: "reasoner enabled without endpoint", mutate: func(c *CoreServiceConfig) { c.Reasoner.Enabled = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateNatsDefaultsBucket(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Type = DBTypeNATS
	cfg.Database.NatsURL = "nats://localhost:4222"

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "bindwatch-decisions", cfg.Database.Bucket)
}
