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
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/bindwatch/bindwatch/pkg/logger"
	"github.com/bindwatch/bindwatch/pkg/models"
)

// NatsStore is a JetStream key-value Service implementation. Records are
// JSON-encoded under one key per (device, server) binding; the KV revision
// doubles as the monotonic request ID.
type NatsStore struct {
	nc     *nats.Conn
	kv     jetstream.KeyValue
	logger logger.Logger
}

var _ Service = (*NatsStore)(nil)

func NewNatsStore(ctx context.Context, natsURL, bucket string, log logger.Logger) (*NatsStore, error) {
	nc, err := nats.Connect(natsURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToConnect, err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()

		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	kv, err := js.CreateKeyValue(ctx, jetstream.KeyValueConfig{Bucket: bucket})
	if err != nil {
		nc.Close()

		return nil, fmt.Errorf("failed to create KV bucket: %w", err)
	}

	log.Info().
		Str("bucket", bucket).
		Msg("Connected to NATS record store")

	return &NatsStore{nc: nc, kv: kv, logger: log}, nil
}

// recordKeyFor encodes both key parts so arbitrary device IDs and addresses
// stay inside the KV key character set.
func recordKeyFor(deviceID, serverIP string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(deviceID)) +
		"." +
		base64.RawURLEncoding.EncodeToString([]byte(serverIP))
}

func (n *NatsStore) GetDecision(ctx context.Context, deviceID, serverIP string) (*models.DecisionRecord, error) {
	entry, err := n.kv.Get(ctx, recordKeyFor(deviceID, serverIP))
	if errors.Is(err, jetstream.ErrKeyNotFound) {
		return nil, ErrDecisionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToQuery, err)
	}

	var rec models.DecisionRecord
	if err := json.Unmarshal(entry.Value(), &rec); err != nil {
		return nil, fmt.Errorf("failed to decode decision record: %w", err)
	}

	rec.RequestID = int64(entry.Revision())

	return &rec, nil
}

func (n *NatsStore) UpsertDecision(ctx context.Context, record *models.DecisionRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode decision record: %w", err)
	}

	rev, err := n.kv.Put(ctx, recordKeyFor(record.DeviceID, record.ServerIP), data)
	if err != nil {
		return fmt.Errorf("%w: %w", errFailedToUpsert, err)
	}

	record.RequestID = int64(rev)

	return nil
}

func (n *NatsStore) Close() error {
	n.nc.Close()
	return nil
}
