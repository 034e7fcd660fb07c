// Package auth implements login, refresh, and logout for the editor surface.
//
// There is a single configured admin credential. Access tokens are short
// lived RS256 JWTs; refresh sessions live in Redis and rotate on use.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nandaprasetyo/jelajah/internal/platform/apperr"
	"github.com/nandaprasetyo/jelajah/internal/platform/constants"
	"github.com/nandaprasetyo/jelajah/internal/platform/sec"
)

// TokenIssuer signs access tokens for an authenticated identity.
type TokenIssuer interface {
	GenerateToken(username string, role sec.Role, ttl time.Duration) (string, error)
}

type Service struct {
	adminUsername     string
	adminPasswordHash string
	tokens            TokenIssuer
	sessions          SessionRepository
	logger            *slog.Logger
}

func NewService(adminUsername, adminPasswordHash string, tokens TokenIssuer, sessions SessionRepository, logger *slog.Logger) *Service {
	return &Service{
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
		tokens:            tokens,
		sessions:          sessions,
		logger:            logger,
	}
}

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// Login verifies the admin credential and issues a token pair.
//
// The same error is returned for an unknown username and a wrong password,
// so the response does not reveal which part failed.
func (service *Service) Login(context context.Context, username, password string) (*TokenPair, error) {
	if username != service.adminUsername || !sec.CheckPassword(service.adminPasswordHash, password) {
		service.logger.Warn("login_failed", slog.String("username", username))
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	pair, err := service.issuePair(context, username)
	if err != nil {
		return nil, err
	}

	service.logger.Info("login_succeeded", slog.String("username", username))
	return pair, nil
}

// Refresh exchanges a refresh token for a fresh token pair. The consumed
// token is invalid afterwards even if the exchange fails downstream.
func (service *Service) Refresh(context context.Context, refreshToken string) (*TokenPair, error) {
	username, err := service.sessions.ConsumeSession(context, refreshToken)
	if err != nil {
		return nil, err
	}
	return service.issuePair(context, username)
}

// Logout invalidates a refresh session. It is idempotent.
func (service *Service) Logout(context context.Context, refreshToken string) error {
	return service.sessions.DeleteSession(context, refreshToken)
}

func (service *Service) issuePair(context context.Context, username string) (*TokenPair, error) {
	accessToken, err := service.tokens.GenerateToken(username, sec.RoleAdmin, constants.AccessTokenTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	refreshToken := uuid.NewString()
	if err := service.sessions.SaveSession(context, refreshToken, username, constants.RefreshSessionTTL); err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int(constants.AccessTokenTTL.Seconds()),
	}, nil
}
