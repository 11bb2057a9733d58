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

package db

import (
	"context"
	"fmt"

	"github.com/bindwatch/bindwatch/pkg/logger"
	"github.com/bindwatch/bindwatch/pkg/models"
)

// NewService opens the record store selected by the configuration. The store
// is opened once at process start and closed at shutdown; implementations
// never reconnect per call.
func NewService(ctx context.Context, cfg *models.DBConfig, log logger.Logger) (Service, error) {
	switch cfg.Type {
	case models.DBTypeMemory:
		return NewMemoryStore(), nil
	case models.DBTypePostgres:
		return NewPostgresStore(ctx, cfg, log)
	case models.DBTypeNATS:
		return NewNatsStore(ctx, cfg.NatsURL, cfg.Bucket, log)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDBType, cfg.Type)
	}
}
