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

import "errors"

var (
	// ErrDecisionNotFound indicates that no record exists for the requested
	// (device, server) key.
	ErrDecisionNotFound = errors.New("no decision record found for the specified device and server")

	// ErrUnsupportedDBType indicates an unknown database type in the config.
	ErrUnsupportedDBType = errors.New("unsupported database type")

	errFailedToConnect = errors.New("failed to connect to the record store")
	errFailedToQuery   = errors.New("failed to query the record store")
	errFailedToUpsert  = errors.New("failed to upsert decision record")
)
