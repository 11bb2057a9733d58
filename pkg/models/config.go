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
	"fmt"
	"time"

	"github.com/bindwatch/bindwatch/pkg/logger"
)

// Duration is a time.Duration that unmarshals from either a JSON number
// (nanoseconds) or a Go duration string such as "5m" or "2s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

var (
	errInvalidDuration         = fmt.Errorf("invalid duration")
	errListenAddrRequired      = fmt.Errorf("listen address is required")
	errDatabaseTypeInvalid     = fmt.Errorf("database type must be one of memory, postgres, nats")
	errDatabaseHostRequired    = fmt.Errorf("database host is required for the postgres backend")
	errDatabaseNameRequired    = fmt.Errorf("database name is required for the postgres backend")
	errNatsURLRequired         = fmt.Errorf("nats url is required for the nats backend")
	errProbeModeInvalid        = fmt.Errorf("probe mode must be one of icmp, tcp")
	errProbeTCPPortRequired    = fmt.Errorf("probe tcp_port is required for the tcp probe mode")
	errReasonerEndpointMissing = fmt.Errorf("reasoner endpoint is required when the reasoner is enabled")
)

// Database backends.
const (
	DBTypeMemory   = "memory"
	DBTypePostgres = "postgres"
	DBTypeNATS     = "nats"
)

// Probe modes.
const (
	ProbeModeICMP = "icmp"
	ProbeModeTCP  = "tcp"
)

// DBConfig selects and configures the decision record store backend.
type DBConfig struct {
	Type string `json:"type"` // memory, postgres or nats

	// Postgres backend.
	Host     string `json:"host,omitempty"`
	Port     int    `json:"port,omitempty"`
	Database string `json:"database,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode,omitempty"`
	MaxConns int32  `json:"max_conns,omitempty"`

	// NATS JetStream backend.
	NatsURL string `json:"nats_url,omitempty"`
	Bucket  string `json:"bucket,omitempty"`
}

// ProbeConfig configures the liveness probe used on duplicate reports.
type ProbeConfig struct {
	Mode    string   `json:"mode"`               // icmp or tcp
	Timeout Duration `json:"timeout"`            // per-probe deadline
	TCPPort int      `json:"tcp_port,omitempty"` // required for tcp mode
}

// ReasonerConfig configures the optional external reasoning collaborator that
// may override the deterministic decision table.
type ReasonerConfig struct {
	Enabled  bool     `json:"enabled"`
	Endpoint string   `json:"endpoint,omitempty"`
	APIKey   string   `json:"api_key,omitempty"`
	Timeout  Duration `json:"timeout,omitempty"`
}

// CoreServiceConfig is the top-level configuration for the bindwatch core
// service.
type CoreServiceConfig struct {
	ListenAddr      string         `json:"listen_addr"`
	APIKey          string         `json:"api_key,omitempty"`
	DuplicateWindow Duration       `json:"duplicate_window,omitempty"`
	Database        DBConfig       `json:"database"`
	Probe           ProbeConfig    `json:"probe"`
	Reasoner        ReasonerConfig `json:"reasoner"`
	Logging         *logger.Config `json:"logging,omitempty"`
}

const (
	defaultDuplicateWindow = 5 * time.Minute
	defaultProbeTimeout    = 2 * time.Second
	defaultReasonerTimeout = 30 * time.Second
)

// Validate checks the configuration and fills in defaults. It is called by the
// config loader after unmarshaling.
func (c *CoreServiceConfig) Validate() error {
	if c.ListenAddr == "" {
		return errListenAddrRequired
	}

	if c.DuplicateWindow <= 0 {
		c.DuplicateWindow = Duration(defaultDuplicateWindow)
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateProbe(); err != nil {
		return err
	}

	if c.Reasoner.Enabled && c.Reasoner.Endpoint == "" {
		return errReasonerEndpointMissing
	}

	if c.Reasoner.Timeout <= 0 {
		c.Reasoner.Timeout = Duration(defaultReasonerTimeout)
	}

	if c.Logging == nil {
		c.Logging = logger.DefaultConfig()
	}

	return nil
}

func (c *CoreServiceConfig) validateDatabase() error {
	switch c.Database.Type {
	case "":
		c.Database.Type = DBTypeMemory
	case DBTypeMemory:
	case DBTypePostgres:
		if c.Database.Host == "" {
			return errDatabaseHostRequired
		}

		if c.Database.Database == "" {
			return errDatabaseNameRequired
		}
	case DBTypeNATS:
		if c.Database.NatsURL == "" {
			return errNatsURLRequired
		}

		if c.Database.Bucket == "" {
			c.Database.Bucket = "bindwatch-decisions"
		}
	default:
		return errDatabaseTypeInvalid
	}

	return nil
}

func (c *CoreServiceConfig) validateProbe() error {
	switch c.Probe.Mode {
	case "":
		c.Probe.Mode = ProbeModeICMP
	case ProbeModeICMP:
	case ProbeModeTCP:
		if c.Probe.TCPPort == 0 {
			return errProbeTCPPortRequired
		}
	default:
		return errProbeModeInvalid
	}

	if c.Probe.Timeout <= 0 {
		c.Probe.Timeout = Duration(defaultProbeTimeout)
	}

	return nil
}
