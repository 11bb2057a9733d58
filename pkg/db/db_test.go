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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bindwatch/bindwatch/pkg/logger"
	"github.com/bindwatch/bindwatch/pkg/models"
)

func TestNewServiceSelectsBackend(t *testing.T) {
	svc, err := NewService(context.Background(), &models.DBConfig{Type: models.DBTypeMemory}, logger.NewTestLogger())
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, svc)
	require.NoError(t, svc.Close())

	_, err = NewService(context.Background(), &models.DBConfig{Type: "sqlite"}, logger.NewTestLogger())
	assert.ErrorIs(t, err, ErrUnsupportedDBType)
}
