package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/hmm-ocr-corrector/internal/hmm"
	"github.com/redis/go-redis/v9"
)

// RedisCache stores decode results in Redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a new RedisCache with connection pooling.
func NewRedisCache(connStr string, ttl time.Duration) (*RedisCache, error) {
	opt, err := redis.ParseURL(connStr)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	goapp.Log.Info().Str("redis", opt.Addr).Int("db", opt.DB).Dur("ttl", ttl).Send()
	return &RedisCache{client: redis.NewClient(opt), ttl: ttl}, nil
}

// Get implements service.Cache
func (r *RedisCache) Get(ctx context.Context, key string) (hmm.Path, bool, error) {
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return hmm.Path{}, false, nil
		}
		return hmm.Path{}, false, fmt.Errorf("get %s: %w", key, err)
	}
	var e entry
	if err := json.Unmarshal(b, &e); err != nil {
		return hmm.Path{}, false, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return e.path(), true, nil
}

// Set implements service.Cache
func (r *RedisCache) Set(ctx context.Context, key string, p hmm.Path) error {
	data, err := json.Marshal(toEntry(p))
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, r.ttl).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
