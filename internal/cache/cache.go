package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/starevents/starevents-api/internal/config"
)

const keyPrefix = "starevents"

// Namespaces invalidated as a whole.
const (
	NamespaceReports = "reports"
	NamespaceEvents  = "events"
)

// NewClient connects to redis. url wins over conf.Addr when set.
func NewClient(ctx context.Context, conf *config.RedisConfig, url string) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	}
	if url != "" {
		parsed, err := redis.ParseURL(url)
		if err != nil {
			return nil, fmt.Errorf("redis.ParseURL -> %w", err)
		}
		opts = parsed
	}
	opts.MaxRetries = 3

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("client.Ping -> %w", err)
	}

	return client, nil
}

// Cache is a read-through JSON cache. Each namespace carries a generation
// counter; bumping it orphans every key of the namespace until the TTL expires.
// A nil *Cache always calls through to the loader.
type Cache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func New(rdb redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{
		rdb: rdb,
		ttl: ttl,
	}
}

func generationKey(namespace string) string {
	return fmt.Sprintf("%s:gen:%s", keyPrefix, namespace)
}

func (c *Cache) key(ctx context.Context, namespace, key string) (string, error) {
	gen, err := c.rdb.Get(ctx, generationKey(namespace)).Result()
	if errors.Is(err, redis.Nil) {
		gen = "0"
	} else if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s:%s:%s:%s", keyPrefix, namespace, gen, key), nil
}

// Remember returns the cached value of key, or calls load and caches its result.
// Redis failures are logged and never fail the call.
func Remember[T any](ctx context.Context, c *Cache, namespace, key string, load func(context.Context) (T, error)) (T, error) {
	if c == nil {
		return load(ctx)
	}

	fullKey, err := c.key(ctx, namespace, key)
	if err != nil {
		zap.L().Warn("cache unavailable", zap.String("namespace", namespace), zap.Error(err))
		return load(ctx)
	}

	raw, err := c.rdb.Get(ctx, fullKey).Bytes()
	if err == nil {
		var v T
		if err = json.Unmarshal(raw, &v); err == nil {
			return v, nil
		}
		zap.L().Warn("cache entry corrupt", zap.String("key", fullKey), zap.Error(err))
	} else if !errors.Is(err, redis.Nil) {
		zap.L().Warn("cache get failed", zap.String("key", fullKey), zap.Error(err))
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	encoded, err := json.Marshal(v)
	if err != nil {
		zap.L().Warn("cache encode failed", zap.String("key", fullKey), zap.Error(err))
		return v, nil
	}
	if err = c.rdb.Set(ctx, fullKey, string(encoded), c.ttl).Err(); err != nil {
		zap.L().Warn("cache set failed", zap.String("key", fullKey), zap.Error(err))
	}

	return v, nil
}

// Invalidate drops every entry of the given namespaces.
func (c *Cache) Invalidate(ctx context.Context, namespaces ...string) {
	if c == nil {
		return
	}
	for _, ns := range namespaces {
		if err := c.rdb.Incr(ctx, generationKey(ns)).Err(); err != nil {
			zap.L().Warn("cache invalidate failed", zap.String("namespace", ns), zap.Error(err))
		}
	}
}
