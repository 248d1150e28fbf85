package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/mdelvaux/library-api/pkg/errors"
)

// SessionStore keeps staff refresh sessions and the access-token
// blacklist. JWTs cannot be revoked server-side on their own; the
// blacklist entry outlives the token, so checking it on every
// authenticated request makes logout effective immediately.
//
// Keys: staff:session:{staff_id}, token:blacklist:{token}.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a session store.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// SaveSession stores the refresh token issued at login, expiring with the
// token itself.
func (s *SessionStore) SaveSession(ctx context.Context, staffID uint, refreshToken string, expire time.Duration) error {
	key := fmt.Sprintf("staff:session:%d", staffID)
	if err := s.client.Set(ctx, key, refreshToken, expire).Err(); err != nil {
		return apperrors.Wrap(err, "saving session failed")
	}
	return nil
}

// GetSession returns the stored refresh token; a missing session means
// the staff member is logged out.
func (s *SessionStore) GetSession(ctx context.Context, staffID uint) (string, error) {
	key := fmt.Sprintf("staff:session:%d", staffID)
	token, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperrors.ErrUnauthorized
		}
		return "", apperrors.Wrap(err, "reading session failed")
	}
	return token, nil
}

// DeleteSession drops the refresh session (logout).
func (s *SessionStore) DeleteSession(ctx context.Context, staffID uint) error {
	key := fmt.Sprintf("staff:session:%d", staffID)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return apperrors.Wrap(err, "deleting session failed")
	}
	return nil
}

// AddToBlacklist revokes an access token for the rest of its lifetime.
func (s *SessionStore) AddToBlacklist(ctx context.Context, token string, expire time.Duration) error {
	key := fmt.Sprintf("token:blacklist:%s", token)
	if err := s.client.Set(ctx, key, "revoked", expire).Err(); err != nil {
		return apperrors.Wrap(err, "blacklisting token failed")
	}
	return nil
}

// IsInBlacklist reports whether the token has been revoked.
func (s *SessionStore) IsInBlacklist(ctx context.Context, token string) (bool, error) {
	key := fmt.Sprintf("token:blacklist:%s", token)
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, apperrors.Wrap(err, "checking token blacklist failed")
	}
	return exists > 0, nil
}
