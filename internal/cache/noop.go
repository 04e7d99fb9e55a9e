// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"time"
)

var _ CacheInterface = (*NoopCache)(nil)

// NoopCache never holds anything, used when no Redis address is configured
type NoopCache struct{}

func (c *NoopCache) Get(context.Context, string, interface{}) (bool, error) {
	return false, nil
}

func (c *NoopCache) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}

func (c *NoopCache) Delete(context.Context, string) error {
	return nil
}

func (c *NoopCache) Ping(context.Context) error {
	return nil
}

func NewNoopCache() *NoopCache {
	return new(NoopCache)
}
