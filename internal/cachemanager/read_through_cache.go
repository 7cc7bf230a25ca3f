package cachemanager

import (
	"context"
	"time"
)

// ReadThroughCache fronts a CacheManager with a load function: lookups
// that miss call it and store what it returns.
type ReadThroughCache[K comparable, V any, I any] struct {
	store  CacheManager[K, V]
	load   func(ctx context.Context, input I) (V, error)
	bypass bool
}

// NewReadThroughCache wraps store. With bypass set every Get calls load
// and store is never touched.
func NewReadThroughCache[K comparable, V any, I any](store CacheManager[K, V], load func(ctx context.Context, input I) (V, error), bypass bool) *ReadThroughCache[K, V, I] {
	return &ReadThroughCache[K, V, I]{store: store, load: load, bypass: bypass}
}

// Get returns the value stored under key or loads it from input. Failed
// loads are not remembered, so the next Get retries.
func (r *ReadThroughCache[K, V, I]) Get(ctx context.Context, key K, input I, ttl time.Duration) (V, error) {
	if !r.bypass {
		if hit, ok := r.store.Get(ctx, key); ok {
			return hit, nil
		}
	}

	v, err := r.load(ctx, input)
	if err == nil && !r.bypass {
		r.store.Set(ctx, key, v, ttl)
	}
	return v, err
}

// Invalidate drops everything stored so far.
func (r *ReadThroughCache[K, V, I]) Invalidate(ctx context.Context) error {
	return r.store.Flush(ctx)
}
