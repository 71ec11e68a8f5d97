// Package cache provides a small read-through cache used for the public
// product catalog. Backed by Redis when configured, otherwise disabled.
package cache

import (
	"context"
	"errors"
	"time"
)

var ErrMiss = errors.New("cache: key not found")

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error
}

// Noop satisfies Cache when no Redis address is configured; every Get
// is a miss and writes are dropped.
type Noop struct{}

func (Noop) Get(ctx context.Context, key string) (string, error) { return "", ErrMiss }

func (Noop) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return nil
}

func (Noop) Delete(ctx context.Context, keys ...string) error { return nil }

func (Noop) DeletePattern(ctx context.Context, pattern string) error { return nil }
