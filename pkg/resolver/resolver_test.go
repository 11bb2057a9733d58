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

package resolver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/bindwatch/bindwatch/pkg/logger"
	"github.com/bindwatch/bindwatch/pkg/models"
)

func TestDeterministicTable(t *testing.T) {
	tests := []struct {
		name string
		req  models.ResolveRequest
		want models.Resolution
	}{
		{
			name: "not a duplicate resolves to nothing",
			req:  models.ResolveRequest{IsDuplicate: false, ServerAlive: true},
			want: models.Resolution{},
		},
		{
			name: "duplicate with live server recommends reconfigure",
			req:  models.ResolveRequest{IsDuplicate: true, ServerAlive: true},
			want: models.Resolution{ChangeConfig: true},
		},
		{
			name: "duplicate with dead server recommends switching",
			req:  models.ResolveRequest{IsDuplicate: true, ServerAlive: false},
			want: models.Resolution{ChangeServer: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Deterministic(&tt.req))
		})
	}
}

func TestResolveWithoutExternalUsesTable(t *testing.T) {
	r := New(nil, time.Second, logger.NewTestLogger())

	res := r.Resolve(context.Background(), &models.ResolveRequest{IsDuplicate: true, ServerAlive: true})
	assert.Equal(t, models.Resolution{ChangeConfig: true}, res)
}

func TestResolveExternalOverridesTable(t *testing.T) {
	ctrl := gomock.NewController(t)

	// The collaborator contradicts the table; its structurally valid answer
	// wins.
	external := NewMockExternalResolver(ctrl)
	external.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(ActionSwitchServer, nil)

	r := New(external, time.Second, logger.NewTestLogger())

	res := r.Resolve(context.Background(), &models.ResolveRequest{IsDuplicate: true, ServerAlive: true})
	assert.Equal(t, models.Resolution{ChangeServer: true}, res)
}

func TestResolveExternalNotConsultedForNonDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)

	external := NewMockExternalResolver(ctrl) // no expectations: must not be called

	r := New(external, time.Second, logger.NewTestLogger())

	res := r.Resolve(context.Background(), &models.ResolveRequest{IsDuplicate: false})
	assert.Equal(t, models.Resolution{}, res)
}

func TestResolveFallsBackOnExternalFailure(t *testing.T) {
	errExternal := errors.New("reasoning service unavailable")

	tests := []struct {
		name   string
		action Action
		err    error
	}{
		{name: "transport error", err: errExternal},
		{name: "timeout", err: context.DeadlineExceeded},
		{name: "unrecognized action", action: Action("reboot_everything")},
		{name: "empty action", action: Action("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			external := NewMockExternalResolver(ctrl)
			external.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(tt.action, tt.err).AnyTimes()

			withExternal := New(external, 10*time.Millisecond, logger.NewTestLogger())
			deterministicOnly := New(nil, 10*time.Millisecond, logger.NewTestLogger())

			// A failing collaborator must be indistinguishable from no
			// collaborator at all, for both probe outcomes.
			for _, alive := range []bool{true, false} {
				req := &models.ResolveRequest{DeviceID: "dev1", ServerIP: "10.0.0.5", IsDuplicate: true, ServerAlive: alive}

				assert.Equal(t,
					deterministicOnly.Resolve(context.Background(), req),
					withExternal.Resolve(context.Background(), req),
					"alive=%t", alive)
			}
		})
	}
}
