package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/park285/kifu-viewer/internal/domain"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = time.Hour

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// NewRedisStoreFromURL connects to redisURL (redis:// or rediss://) and pings it.
func NewRedisStoreFromURL(ctx context.Context, redisURL string, ttl time.Duration) (*RedisStore, error) {
	if strings.TrimSpace(redisURL) == "" {
		return nil, fmt.Errorf("REDIS_URL required for redis session store")
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedisStore(rdb, ttl), nil
}

func (s *RedisStore) Close() error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.Close()
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, rec *domain.GameRecord) error {
	if !validID(sessionID) {
		return ErrInvalidSession
	}
	raw, err := encode(rec)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, keyGameData(sessionID), raw, s.ttl).Err()
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (*domain.GameRecord, error) {
	if !validID(sessionID) {
		return nil, ErrInvalidSession
	}
	raw, err := s.rdb.Get(ctx, keyGameData(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decode(raw)
}
