package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nandaprasetyo/jelajah/internal/platform/apperr"
	"github.com/nandaprasetyo/jelajah/internal/platform/constants"
)

// SessionRepository stores refresh sessions keyed by an opaque token.
type SessionRepository interface {
	SaveSession(context context.Context, token, username string, ttl time.Duration) error
	// ConsumeSession returns the username bound to the token and deletes it,
	// so every refresh token is single-use.
	ConsumeSession(context context.Context, token string) (string, error)
	DeleteSession(context context.Context, token string) error
}

// RedisSessionRepository keeps refresh sessions in Redis with a TTL, so
// abandoned sessions expire without a cleanup job.
type RedisSessionRepository struct {
	client *redis.Client
}

func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func sessionKey(token string) string {
	return constants.RedisPrefixSession + token
}

func (repository *RedisSessionRepository) SaveSession(context context.Context, token, username string, ttl time.Duration) error {
	if err := repository.client.Set(context, sessionKey(token), username, ttl).Err(); err != nil {
		return apperr.Internal(fmt.Errorf("save_session: %w", err))
	}
	return nil
}

func (repository *RedisSessionRepository) ConsumeSession(context context.Context, token string) (string, error) {
	username, err := repository.client.GetDel(context, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperr.Unauthorized("Invalid or expired refresh token")
	}
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("consume_session: %w", err))
	}
	return username, nil
}

func (repository *RedisSessionRepository) DeleteSession(context context.Context, token string) error {
	if err := repository.client.Del(context, sessionKey(token)).Err(); err != nil {
		return apperr.Internal(fmt.Errorf("delete_session: %w", err))
	}
	return nil
}
