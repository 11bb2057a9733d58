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
	"errors"
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bindwatch/bindwatch/pkg/logger"
	"github.com/bindwatch/bindwatch/pkg/models"
)

const decisionRecordsSchema = `
CREATE TABLE IF NOT EXISTS decision_records (
	device_id      TEXT NOT NULL,
	server_ip      TEXT NOT NULL,
	last_report_at TIMESTAMPTZ NOT NULL,
	change_config  BOOLEAN NOT NULL DEFAULT FALSE,
	change_server  BOOLEAN NOT NULL DEFAULT FALSE,
	request_id     BIGINT NOT NULL DEFAULT 0,
	PRIMARY KEY (device_id, server_ip)
)`

const getDecisionSQL = `
SELECT device_id, server_ip, last_report_at, change_config, change_server, request_id
FROM decision_records
WHERE device_id = $1 AND server_ip = $2`

const upsertDecisionSQL = `
INSERT INTO decision_records (
	device_id,
	server_ip,
	last_report_at,
	change_config,
	change_server,
	request_id
) VALUES ($1, $2, $3, $4, $5, 1)
ON CONFLICT (device_id, server_ip) DO UPDATE SET
	last_report_at = EXCLUDED.last_report_at,
	change_config  = EXCLUDED.change_config,
	change_server  = EXCLUDED.change_server,
	request_id     = decision_records.request_id + 1
RETURNING request_id`

// PostgresStore is a pgx-backed Service implementation. The upsert is a single
// statement, so concurrent writers on the same key serialize at the row level.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

var _ Service = (*PostgresStore)(nil)

// NewPostgresStore dials the configured database, applies the schema, and
// returns a pool-backed store.
func NewPostgresStore(ctx context.Context, cfg *models.DBConfig, log logger.Logger) (*PostgresStore, error) {
	pool, err := newPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("%w: %w", errFailedToConnect, err)
	}

	if _, err := pool.Exec(ctx, decisionRecordsSchema); err != nil {
		pool.Close()

		return nil, fmt.Errorf("failed to apply decision_records schema: %w", err)
	}

	log.Info().
		Str("host", cfg.Host).
		Str("database", cfg.Database).
		Msg("Connected to postgres record store")

	return &PostgresStore{pool: pool, logger: log}, nil
}

func newPool(ctx context.Context, cfg *models.DBConfig) (*pgxpool.Pool, error) {
	port := cfg.Port
	if port == 0 {
		port = 5432
	}

	connURL := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", cfg.Host, port),
		Path:   "/" + cfg.Database,
	}

	if cfg.Username != "" {
		if cfg.Password != "" {
			connURL.User = url.UserPassword(cfg.Username, cfg.Password)
		} else {
			connURL.User = url.User(cfg.Username)
		}
	}

	query := connURL.Query()

	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	query.Set("sslmode", sslMode)
	query.Set("application_name", "bindwatch-core")
	connURL.RawQuery = query.Encode()

	poolConfig, err := pgxpool.ParseConfig(connURL.String())
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}

	return pgxpool.NewWithConfig(ctx, poolConfig)
}

func (p *PostgresStore) GetDecision(ctx context.Context, deviceID, serverIP string) (*models.DecisionRecord, error) {
	var rec models.DecisionRecord

	err := p.pool.QueryRow(ctx, getDecisionSQL, deviceID, serverIP).Scan(
		&rec.DeviceID,
		&rec.ServerIP,
		&rec.LastReportAt,
		&rec.ChangeConfig,
		&rec.ChangeServer,
		&rec.RequestID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDecisionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToQuery, err)
	}

	return &rec, nil
}

func (p *PostgresStore) UpsertDecision(ctx context.Context, record *models.DecisionRecord) error {
	err := p.pool.QueryRow(ctx, upsertDecisionSQL,
		record.DeviceID,
		record.ServerIP,
		record.LastReportAt,
		record.ChangeConfig,
		record.ChangeServer,
	).Scan(&record.RequestID)
	if err != nil {
		return fmt.Errorf("%w: %w", errFailedToUpsert, err)
	}

	return nil
}

func (p *PostgresStore) Close() error {
	p.pool.Close()
	return nil
}
