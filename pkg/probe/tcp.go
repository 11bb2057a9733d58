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

package probe

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/bindwatch/bindwatch/pkg/logger"
	"github.com/bindwatch/bindwatch/pkg/models"
)

// TCPProber checks reachability by completing one TCP connect to a fixed port.
// Useful where ICMP is filtered but the monitored service listens on a known
// port.
type TCPProber struct {
	port    int
	timeout time.Duration
	logger  logger.Logger
}

var _ Prober = (*TCPProber)(nil)

func NewTCPProber(cfg *models.ProbeConfig, log logger.Logger) *TCPProber {
	return &TCPProber{
		port:    cfg.TCPPort,
		timeout: time.Duration(cfg.Timeout),
		logger:  log,
	}
}

func (p *TCPProber) IsAlive(ctx context.Context, address string) bool {
	// Per-probe timeout context that respects both parent context and timeout.
	probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var dialer net.Dialer

	conn, err := dialer.DialContext(probeCtx, "tcp", net.JoinHostPort(address, strconv.Itoa(p.port)))
	if err != nil {
		p.logger.Debug().
			Str("address", address).
			Int("port", p.port).
			Err(err).
			Msg("TCP probe failed")

		return false
	}

	if err := conn.Close(); err != nil {
		p.logger.Debug().Err(err).Msg("Failed to close probe connection")
	}

	return true
}
