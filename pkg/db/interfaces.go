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

// Package db persists decision records, one row per (device, server) binding.
package db

import (
	"context"

	"github.com/bindwatch/bindwatch/pkg/models"
)

//go:generate mockgen -destination=mock_db.go -package=db github.com/bindwatch/bindwatch/pkg/db Service

// Service represents all record store operations. A record is either fully
// present with all fields set or absent; there are no partial writes.
type Service interface {
	// GetDecision returns the record for the key, or ErrDecisionNotFound.
	GetDecision(ctx context.Context, deviceID, serverIP string) (*models.DecisionRecord, error)

	// UpsertDecision inserts or overwrites the record for its key and assigns
	// the per-key monotonic request ID on the passed record.
	UpsertDecision(ctx context.Context, record *models.DecisionRecord) error

	Close() error
}
