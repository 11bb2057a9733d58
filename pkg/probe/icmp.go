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
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"github.com/bindwatch/bindwatch/pkg/logger"
	"github.com/bindwatch/bindwatch/pkg/models"
)

// ICMPProber checks reachability with a single ping under a bounded timeout.
type ICMPProber struct {
	timeout time.Duration
	logger  logger.Logger
}

var _ Prober = (*ICMPProber)(nil)

func NewICMPProber(cfg *models.ProbeConfig, log logger.Logger) *ICMPProber {
	return &ICMPProber{
		timeout: time.Duration(cfg.Timeout),
		logger:  log,
	}
}

// IsAlive sends one ICMP echo request. The address must parse as an IP; this
// also keeps unvalidated input away from the ping invocation.
func (p *ICMPProber) IsAlive(ctx context.Context, address string) bool {
	if net.ParseIP(address) == nil {
		p.logger.Debug().
			Str("address", address).
			Msg("Probe target is not a valid IP address, treating as not alive")

		return false
	}

	probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	cmd := exec.CommandContext(probeCtx, "ping", pingArgs(p.timeout, address)...)

	err := cmd.Run()
	if err != nil {
		p.logger.Debug().
			Str("address", address).
			Err(err).
			Msg("ICMP probe failed")

		return false
	}

	return true
}

func pingArgs(timeout time.Duration, address string) []string {
	secs := int(timeout.Seconds())
	if secs < 1 {
		secs = 1
	}

	if runtime.GOOS == "windows" {
		return []string{"-n", "1", "-w", strconv.Itoa(secs * 1000), address}
	}

	return []string{"-c", "1", "-W", strconv.Itoa(secs), address}
}
