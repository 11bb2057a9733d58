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
	"sync"

	"github.com/bindwatch/bindwatch/pkg/models"
)

type recordKey struct {
	deviceID string
	serverIP string
}

// MemoryStore is a mutex-guarded in-memory Service implementation. It is the
// default backend for development and the backend used in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[recordKey]*models.DecisionRecord
}

var _ Service = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[recordKey]*models.DecisionRecord),
	}
}

func (m *MemoryStore) GetDecision(_ context.Context, deviceID, serverIP string) (*models.DecisionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[recordKey{deviceID: deviceID, serverIP: serverIP}]
	if !ok {
		return nil, ErrDecisionNotFound
	}

	// Return a copy so callers cannot mutate stored state.
	out := *rec

	return &out, nil
}

func (m *MemoryStore) UpsertDecision(_ context.Context, record *models.DecisionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := recordKey{deviceID: record.DeviceID, serverIP: record.ServerIP}

	var nextID int64 = 1
	if prev, ok := m.records[key]; ok {
		nextID = prev.RequestID + 1
	}

	record.RequestID = nextID

	stored := *record
	m.records[key] = &stored

	return nil
}

func (*MemoryStore) Close() error {
	return nil
}
