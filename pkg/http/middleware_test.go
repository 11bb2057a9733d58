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

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bindwatch/bindwatch/pkg/logger"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*called = true

		w.WriteHeader(http.StatusOK)
	})
}

func TestCommonMiddlewareAssignsRequestID(t *testing.T) {
	var called bool

	handler := CommonMiddleware(logger.NewTestLogger())(okHandler(&called))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.True(t, called)
	assert.NotEmpty(t, rr.Header().Get(RequestIDHeader))
}

func TestCommonMiddlewarePreservesCallerRequestID(t *testing.T) {
	var called bool

	handler := CommonMiddleware(logger.NewTestLogger())(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "caller-id")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, "caller-id", rr.Header().Get(RequestIDHeader))
}

func TestCommonMiddlewareShortCircuitsPreflight(t *testing.T) {
	var called bool

	handler := CommonMiddleware(logger.NewTestLogger())(okHandler(&called))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/api/reports", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestAPIKeyMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		header     string
		query      string
		wantStatus int
	}{
		{name: "no key configured passes everything", configured: "", wantStatus: http.StatusOK},
		{name: "matching header", configured: "secret", header: "secret", wantStatus: http.StatusOK},
		{name: "matching query parameter", configured: "secret", query: "secret", wantStatus: http.StatusOK},
		{name: "missing key", configured: "secret", wantStatus: http.StatusUnauthorized},
		{name: "wrong key", configured: "secret", header: "nope", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool

			handler := APIKeyMiddleware(tt.configured, logger.NewTestLogger())(okHandler(&called))

			target := "/api/ping/10.0.0.5"
			if tt.query != "" {
				target += "?api_key=" + tt.query
			}

			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.header != "" {
				req.Header.Set("X-API-Key", tt.header)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, called)
		})
	}
}
