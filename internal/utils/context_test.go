// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "session", sessionCtxKey.String())
}

func TestSessionFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   SessionRef
		wantOK bool
	}{
		{
			name:   "set by WithSession",
			ctx:    WithSession(context.Background(), 7, "session-1"),
			want:   SessionRef{UserID: 7, SessionID: "session-1"},
			wantOK: true,
		},
		{
			name: "missing",
			ctx:  context.Background(),
		},
		{
			name: "empty session id",
			ctx:  WithSession(context.Background(), 7, ""),
		},
		{
			name: "wrong value type",
			ctx:  context.WithValue(context.Background(), sessionCtxKey, "session-1"),
		},
		{
			name: "foreign key with same text",
			ctx:  context.WithValue(context.Background(), "session", SessionRef{UserID: 1, SessionID: "x"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SessionFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestWithSession_Overrides(t *testing.T) {
	ctx := WithSession(context.Background(), 1, "first")
	ctx = WithSession(ctx, 2, "second")

	got, ok := SessionFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, SessionRef{UserID: 2, SessionID: "second"}, got)
}
