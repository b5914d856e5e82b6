package security

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrSessionRevoked = errors.New("session has been revoked")

// RedisClient is the subset of *redis.Client used for the session registry.
type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	SAdd(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
	SRem(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// SessionManager issues signed session cookies and tracks live sessions in
// Redis so a logout takes effect before the token expires.
type SessionManager struct {
	tokens TokenManager
	redis  RedisClient
	ttl    time.Duration
}

func NewSessionManager(tokens TokenManager, client RedisClient, ttl time.Duration) *SessionManager {
	return &SessionManager{tokens: tokens, redis: client, ttl: ttl}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

// userSessionsKey indexes the live session ids of one user.
func userSessionsKey(userID int32) string {
	return fmt.Sprintf("user_sessions:%d", userID)
}

// Start signs a new session and registers it.
func (m *SessionManager) Start(ctx context.Context, userID int32, userType, name, email string) (string, error) {
	token, claims, err := m.tokens.GenerateSessionToken(userID, userType, name, email)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	if err := m.redis.Set(ctx, sessionKey(claims.ID), userID, m.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to register session: %w", err)
	}
	index := userSessionsKey(userID)
	if err := m.redis.SAdd(ctx, index, claims.ID).Err(); err != nil {
		return "", fmt.Errorf("failed to index session: %w", err)
	}
	if err := m.redis.Expire(ctx, index, m.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to index session: %w", err)
	}
	return token, nil
}

// Resolve validates the cookie value and checks the session is still live.
func (m *SessionManager) Resolve(ctx context.Context, token string) (*SessionClaims, error) {
	claims, err := m.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	n, err := m.redis.Exists(ctx, sessionKey(claims.ID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check session: %w", err)
	}
	if n == 0 {
		return nil, ErrSessionRevoked
	}
	return claims, nil
}

// End revokes the session.
func (m *SessionManager) End(ctx context.Context, claims *SessionClaims) error {
	if err := m.redis.Del(ctx, sessionKey(claims.ID)).Err(); err != nil {
		return err
	}
	return m.redis.SRem(ctx, userSessionsKey(claims.UserID), claims.ID).Err()
}

// RevokeUser ends every live session of the user.
func (m *SessionManager) RevokeUser(ctx context.Context, userID int32) error {
	index := userSessionsKey(userID)
	ids, err := m.redis.SMembers(ctx, index).Result()
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}
	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, sessionKey(id))
	}
	keys = append(keys, index)
	return m.redis.Del(ctx, keys...).Err()
}

// TTL is the session lifetime, used for the cookie Max-Age.
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}
