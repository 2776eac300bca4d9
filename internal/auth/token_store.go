package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	apperrors "wardrobe/internal/errors"
)

const (
	sessionKeyPrefix = "session:"
	// tokenLength is the byte length of the random session token.
	tokenLength = 32
)

// TokenStore holds opaque session tokens. A token is valid exactly while its
// entry exists; there is no expiry, and a user may hold any number of
// concurrent tokens.
type TokenStore interface {
	Save(ctx context.Context, token string, userID uint) error
	Resolve(ctx context.Context, token string) (userID uint, err error)
	Revoke(ctx context.Context, token string) error
}

// RedisTokenStore keeps sessions in Redis. Unlike the read cache it talks to
// the client directly and surfaces errors: session resolution has to fail
// closed rather than degrade to a miss.
type RedisTokenStore struct {
	client *redis.Client
}

var _ TokenStore = (*RedisTokenStore)(nil)

// NewTokenStore creates a Redis-backed token store.
func NewTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

// Save stores the token with no TTL; it lives until explicitly revoked.
func (s *RedisTokenStore) Save(ctx context.Context, token string, userID uint) error {
	key := sessionKeyPrefix + token
	if err := s.client.Set(ctx, key, strconv.FormatUint(uint64(userID), 10), 0).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Resolve returns the owning user id for a live token.
func (s *RedisTokenStore) Resolve(ctx context.Context, token string) (uint, error) {
	key := sessionKeyPrefix + token
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return 0, apperrors.ErrInvalidToken
	}
	if err != nil {
		return 0, fmt.Errorf("resolve session: %w", err)
	}
	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse session user id: %w", err)
	}
	return uint(userID), nil
}

// Revoke deletes exactly the presented token. Revoking an absent token is an
// authentication failure, not a no-op.
func (s *RedisTokenStore) Revoke(ctx context.Context, token string) error {
	key := sessionKeyPrefix + token
	deleted, err := s.client.Del(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	if deleted == 0 {
		return apperrors.ErrInvalidToken
	}
	return nil
}

// GenerateToken returns a new cryptographically random session token.
func GenerateToken() (string, error) {
	b := make([]byte, tokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
