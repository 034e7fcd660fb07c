package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandaprasetyo/jelajah/internal/platform/apperr"
	"github.com/nandaprasetyo/jelajah/internal/platform/sec"
)

type fakeSessions struct {
	sessions map[string]string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: map[string]string{}}
}

func (s *fakeSessions) SaveSession(_ context.Context, token, username string, _ time.Duration) error {
	s.sessions[token] = username
	return nil
}

func (s *fakeSessions) ConsumeSession(_ context.Context, token string) (string, error) {
	username, ok := s.sessions[token]
	if !ok {
		return "", apperr.Unauthorized("Invalid or expired refresh token")
	}
	delete(s.sessions, token)
	return username, nil
}

func (s *fakeSessions) DeleteSession(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

type fakeIssuer struct{}

func (fakeIssuer) GenerateToken(username string, role sec.Role, _ time.Duration) (string, error) {
	return "signed:" + username + ":" + string(role), nil
}

func newTestService(t *testing.T) (*Service, *fakeSessions) {
	t.Helper()

	hash, err := sec.HashPassword("rahasia-kampus")
	require.NoError(t, err)

	sessions := newFakeSessions()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService("admin", hash, fakeIssuer{}, sessions, logger), sessions
}

func TestLoginSucceeds(t *testing.T) {
	service, sessions := newTestService(t)

	pair, err := service.Login(context.Background(), "admin", "rahasia-kampus")
	require.NoError(t, err)

	assert.Equal(t, "signed:admin:admin", pair.AccessToken)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "admin", sessions.sessions[pair.RefreshToken])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	service, _ := newTestService(t)

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "salah"},
		{"unknown username", "operator", "rahasia-kampus"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Login(context.Background(), tc.username, tc.password)
			require.Error(t, err)
			assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
		})
	}
}

func TestRefreshRotatesSession(t *testing.T) {
	service, sessions := newTestService(t)
	ctx := context.Background()

	pair, err := service.Login(ctx, "admin", "rahasia-kampus")
	require.NoError(t, err)

	next, err := service.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)

	_, stale := sessions.sessions[pair.RefreshToken]
	assert.False(t, stale, "consumed refresh token must be gone")

	_, err = service.Refresh(ctx, pair.RefreshToken)
	require.Error(t, err, "refresh tokens are single use")
}

func TestLogoutIsIdempotent(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	pair, err := service.Login(ctx, "admin", "rahasia-kampus")
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx, pair.RefreshToken))
	require.NoError(t, service.Logout(ctx, pair.RefreshToken))

	_, err = service.Refresh(ctx, pair.RefreshToken)
	require.Error(t, err)
}
