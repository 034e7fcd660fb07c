// Copyright (c) 2026 Jelajah. All rights reserved.
// Author: nanda.prasetyo.dev@gmail.com

package ctxutil_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandaprasetyo/jelajah/internal/platform/ctxutil"
	"github.com/nandaprasetyo/jelajah/internal/platform/sec"
)

/*
TestRequestID verifies storage and retrieval of the correlation ID.
*/
func TestRequestID(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", ctxutil.GetRequestID(ctx))
}

/*
TestLogger verifies that a missing logger falls back to the default.
*/
func TestLogger(t *testing.T) {
	ctx := context.Background()

	// Fallback: never nil, even on a bare context.
	require.NotNil(t, ctxutil.GetLogger(ctx))
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	custom := slog.Default().With(slog.String("scope", "test"))
	ctx = ctxutil.WithLogger(ctx, custom)
	assert.Equal(t, custom, ctxutil.GetLogger(ctx))
}

/*
TestAuthUser verifies claims round-tripping and the anonymous case.
*/
func TestAuthUser(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, ctxutil.GetAuthUser(ctx))

	claims := &sec.AuthClaims{Username: "admin", Role: string(sec.RoleAdmin)}
	ctx = ctxutil.WithAuthUser(ctx, claims)

	got := ctxutil.GetAuthUser(ctx)
	require.NotNil(t, got)
	assert.Equal(t, "admin", got.Username)
	assert.Equal(t, string(sec.RoleAdmin), got.Role)
}
