package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store using Redis. This is suitable for
// distributed deployments where multiple instances serve the same
// sessions.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// NewRedisStore creates a new Redis-based snapshot store
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisStoreWithClient(client, "", cfg.TTL), nil
}

// NewRedisStoreWithClient creates a store with an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewRedisStoreWithClient(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = "session:snapshot:"
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

// Load returns the raw snapshot for the session, or ErrNotFound
func (s *RedisStore) Load(ctx context.Context, sessionID string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.keyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session snapshot: %w", err)
	}
	return data, nil
}

// Save writes the snapshot, resetting its expiration
func (s *RedisStore) Save(ctx context.Context, sessionID string, data []byte) error {
	if err := s.client.Set(ctx, s.keyPrefix+sessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session snapshot: %w", err)
	}
	return nil
}

// Delete removes the snapshot
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete session snapshot: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
