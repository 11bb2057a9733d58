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

// Package core implements the bindwatch decision engine.
package core

import (
	"context"
	"time"

	"github.com/bindwatch/bindwatch/pkg/models"
)

//go:generate mockgen -destination=mock_core.go -package=core github.com/bindwatch/bindwatch/pkg/core DecisionResolver,Clock

// DecisionResolver maps a duplicate report plus probe outcome to a
// recommendation. Implementations never fail; collaborator errors are
// absorbed behind a deterministic fallback.
type DecisionResolver interface {
	Resolve(ctx context.Context, req *models.ResolveRequest) models.Resolution
}

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// realClock implements Clock for production use.
type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}
