// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/tracing"
)

const keyPrefix = "agency-service:"

type Config struct {
	Addr     string
	Password string
	DB       int
}

var _ CacheInterface = (*RedisCache)(nil)

type RedisCache struct {
	client redis.UniversalClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *RedisCache) Get(ctx context.Context, key string, v interface{}) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "cache.RedisCache.Get")
	defer span.End()

	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to read %s from cache: %w", key, err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		// a stale or foreign entry is a miss, it gets overwritten on the next Set
		c.logger.Warnf("dropping undecodable cache entry %s: %v", key, err)
		return false, nil
	}

	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	ctx, span := c.tracer.Start(ctx, "cache.RedisCache.Set")
	defer span.End()

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry %s: %w", key, err)
	}

	if err := c.client.Set(ctx, keyPrefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write %s to cache: %w", key, err)
	}

	return nil
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	ctx, span := c.tracer.Start(ctx, "cache.RedisCache.Delete")
	defer span.End()

	if err := c.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s from cache: %w", key, err)
	}

	return nil
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func NewRedisCache(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *RedisCache {
	c := new(RedisCache)

	c.client = redis.NewClient(
		&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		},
	)

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
