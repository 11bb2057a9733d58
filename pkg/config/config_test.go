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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bindwatch/bindwatch/pkg/models"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "core.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadAndValidateFromFile(t *testing.T) {
	path := writeConfigFile(t, `{
		"listen_addr": ":8090",
		"duplicate_window": "5m",
		"database": {"type": "memory"},
		"probe": {"mode": "tcp", "timeout": "2s", "tcp_port": 443}
	}`)

	var cfg models.CoreServiceConfig

	require.NoError(t, NewConfig(nil).LoadAndValidate(context.Background(), path, &cfg))

	assert.Equal(t, ":8090", cfg.ListenAddr)
	assert.Equal(t, 5*time.Minute, time.Duration(cfg.DuplicateWindow))
	assert.Equal(t, models.ProbeModeTCP, cfg.Probe.Mode)
	assert.Equal(t, 443, cfg.Probe.TCPPort)
}

func TestLoadAndValidateAppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"listen_addr": ":8090"}`)

	var cfg models.CoreServiceConfig

	require.NoError(t, NewConfig(nil).LoadAndValidate(context.Background(), path, &cfg))

	assert.Equal(t, models.DBTypeMemory, cfg.Database.Type)
	assert.Equal(t, models.ProbeModeICMP, cfg.Probe.Mode)
	assert.Equal(t, 5*time.Minute, time.Duration(cfg.DuplicateWindow))
	assert.Equal(t, 2*time.Second, time.Duration(cfg.Probe.Timeout))
	assert.NotNil(t, cfg.Logging)
}

func TestLoadAndValidateRejectsInvalidConfig(t *testing.T) {
	path := writeConfigFile(t, `{"probe": {"mode": "icmp"}}`)

	var cfg models.CoreServiceConfig

	err := NewConfig(nil).LoadAndValidate(context.Background(), path, &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen address")
}

func TestLoadMissingFileFails(t *testing.T) {
	var cfg models.CoreServiceConfig

	err := NewConfig(nil).LoadAndValidate(context.Background(), "/nonexistent/core.json", &cfg)
	assert.ErrorIs(t, err, errFailedToReadConfig)
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := writeConfigFile(t, `{"listen_addr": `)

	var cfg models.CoreServiceConfig

	err := NewConfig(nil).LoadAndValidate(context.Background(), path, &cfg)
	assert.ErrorIs(t, err, errFailedToParseConfig)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "env")
	t.Setenv("BINDWATCH_LISTEN_ADDR", ":8090")
	t.Setenv("BINDWATCH_API_KEY", "secret")
	t.Setenv("BINDWATCH_DATABASE_TYPE", "nats")
	t.Setenv("BINDWATCH_DATABASE_NATS_URL", "nats://localhost:4222")
	t.Setenv("BINDWATCH_PROBE_MODE", "tcp")
	t.Setenv("BINDWATCH_PROBE_TCP_PORT", "443")
	t.Setenv("BINDWATCH_PROBE_TIMEOUT", "3s")

	var cfg models.CoreServiceConfig

	require.NoError(t, NewConfig(nil).LoadAndValidate(context.Background(), "", &cfg))

	assert.Equal(t, ":8090", cfg.ListenAddr)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, models.DBTypeNATS, cfg.Database.Type)
	assert.Equal(t, "nats://localhost:4222", cfg.Database.NatsURL)
	assert.Equal(t, 443, cfg.Probe.TCPPort)
	assert.Equal(t, 3*time.Second, time.Duration(cfg.Probe.Timeout))
	assert.Equal(t, "bindwatch-decisions", cfg.Database.Bucket)
}

func TestLoadFromEnvironmentConfigJSONShortcut(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "env")
	t.Setenv("BINDWATCH_CONFIG_JSON", `{"listen_addr": ":9000", "database": {"type": "memory"}}`)

	var cfg models.CoreServiceConfig

	require.NoError(t, NewConfig(nil).LoadAndValidate(context.Background(), "", &cfg))
	assert.Equal(t, ":9000", cfg.ListenAddr)
}

func TestLoadRejectsUnknownConfigSource(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "consul")

	var cfg models.CoreServiceConfig

	err := NewConfig(nil).LoadAndValidate(context.Background(), "", &cfg)
	assert.ErrorIs(t, err, errInvalidConfigSource)
}

func TestEnvLoaderRequiresStructPointer(t *testing.T) {
	loader := NewEnvConfigLoader(nil, "BINDWATCH_")

	var notAStruct int

	assert.ErrorIs(t, loader.Load(context.Background(), "", &notAStruct), ErrDstMustBePointerToStruct)
	assert.ErrorIs(t, loader.Load(context.Background(), "", nil), ErrDstMustBeNonNilPointer)
}
