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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bindwatch/bindwatch/pkg/models"
)

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.GetDecision(context.Background(), "dev1", "10.0.0.5")
	assert.ErrorIs(t, err, ErrDecisionNotFound)
}

func TestMemoryStoreUpsertRoundtrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	rec := &models.DecisionRecord{
		DeviceID:     "dev1",
		ServerIP:     "10.0.0.5",
		LastReportAt: time.Unix(1700000000, 0).UTC(),
		ChangeConfig: true,
	}

	require.NoError(t, store.UpsertDecision(ctx, rec))
	assert.Equal(t, int64(1), rec.RequestID)

	got, err := store.GetDecision(ctx, "dev1", "10.0.0.5")
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestMemoryStoreRequestIDsAreMonotonic(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		rec := &models.DecisionRecord{DeviceID: "dev1", ServerIP: "10.0.0.5"}
		require.NoError(t, store.UpsertDecision(ctx, rec))
		assert.Equal(t, int64(i), rec.RequestID)
	}

	// Counters are per key, not global.
	other := &models.DecisionRecord{DeviceID: "dev2", ServerIP: "10.0.0.5"}
	require.NoError(t, store.UpsertDecision(ctx, other))
	assert.Equal(t, int64(1), other.RequestID)
}

func TestMemoryStoreKeysAreScopedByPair(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.UpsertDecision(ctx, &models.DecisionRecord{
		DeviceID: "dev1", ServerIP: "10.0.0.5", ChangeConfig: true,
	}))
	require.NoError(t, store.UpsertDecision(ctx, &models.DecisionRecord{
		DeviceID: "dev1", ServerIP: "10.0.0.6", ChangeServer: true,
	}))

	a, err := store.GetDecision(ctx, "dev1", "10.0.0.5")
	require.NoError(t, err)
	assert.True(t, a.ChangeConfig)
	assert.False(t, a.ChangeServer)

	b, err := store.GetDecision(ctx, "dev1", "10.0.0.6")
	require.NoError(t, err)
	assert.True(t, b.ChangeServer)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.UpsertDecision(ctx, &models.DecisionRecord{
		DeviceID: "dev1", ServerIP: "10.0.0.5",
	}))

	first, err := store.GetDecision(ctx, "dev1", "10.0.0.5")
	require.NoError(t, err)

	// Mutating a returned record must not leak into the store.
	first.ChangeServer = true

	second, err := store.GetDecision(ctx, "dev1", "10.0.0.5")
	require.NoError(t, err)
	assert.False(t, second.ChangeServer)
}
