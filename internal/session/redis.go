package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ats-gateway/internal/config"
	"github.com/MKhiriev/go-ats-gateway/models"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix   = "session:"
	redisPingTimeout = 5 * time.Second
)

// ConnectRedis initialises a Redis client and validates connectivity with a
// ping.
func ConnectRedis(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// RedisStore is a [Store] shared by server processes.
// Key format: session:<id>. Entries expire together with their access token.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisStore wraps client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

// Get implements [Store].
func (r *RedisStore) Get(ctx context.Context, id string) (*models.Session, error) {
	data, err := r.client.Get(ctx, redisKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	var s models.Session
	if err = json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode redis session: %w", err)
	}
	s.ID = id

	return &s, nil
}

// Save implements [Store].
func (r *RedisStore) Save(ctx context.Context, s *models.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode redis session: %w", err)
	}

	if err = r.client.Set(ctx, redisKey(s.ID), data, sessionTTL(s, r.now())).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

// Delete implements [Store].
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, redisKey(id)).Err(); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}

func redisKey(id string) string {
	return redisKeyPrefix + id
}

// sessionTTL returns the remaining lifetime of s. Zero means no expiry.
func sessionTTL(s *models.Session, now time.Time) time.Duration {
	if s.Tokens.ExpiresAt.IsZero() {
		return 0
	}

	ttl := s.Tokens.ExpiresAt.Sub(now)
	if ttl < time.Second {
		return time.Second
	}
	return ttl
}
