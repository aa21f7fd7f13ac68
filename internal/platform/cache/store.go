package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Store is an in-memory TTL map. A ttl <= 0 keeps entries until they are
// replaced or deleted. Concurrent GetOrLoad calls for a missing key share one
// loader call.
type Store[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	ttl     time.Duration
	now     func() time.Time
	flight  singleflight.Group
}

func NewStore[V any](ttl time.Duration) *Store[V] {
	return &Store[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *Store[V]) expired(e entry[V], now time.Time) bool {
	return s.ttl > 0 && !e.storedAt.Add(s.ttl).After(now)
}

func (s *Store[V]) Get(_ context.Context, key string) (V, bool) {
	v, _, ok := s.lookup(key)
	return v, ok
}

// StoredAt reports when the live entry for key was written.
func (s *Store[V]) StoredAt(key string) (time.Time, bool) {
	_, at, ok := s.lookup(key)
	return at, ok
}

func (s *Store[V]) lookup(key string) (V, time.Time, bool) {
	var zero V
	if key == "" {
		return zero, time.Time{}, false
	}

	now := s.now()
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return zero, time.Time{}, false
	}
	if s.expired(e, now) {
		s.mu.Lock()
		if current, ok := s.entries[key]; ok && s.expired(current, now) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return zero, time.Time{}, false
	}
	return e.value, e.storedAt, true
}

func (s *Store[V]) Set(_ context.Context, key string, value V) {
	if key == "" {
		return
	}

	s.mu.Lock()
	s.entries[key] = entry[V]{value: value, storedAt: s.now()}
	s.mu.Unlock()
}

// GetOrLoad returns the cached value for key or loads and stores it. Loader
// errors are returned to every waiter and nothing is cached. The shared load
// runs detached from the caller's cancellation; a cancelled caller returns
// early while the load completes for the others.
func (s *Store[V]) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (V, error)) (V, error) {
	var zero V
	if loader == nil {
		return zero, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := s.flight.DoChan(key, func() (any, error) {
		if cached, ok := s.Get(loadCtx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(loadCtx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.Set(loadCtx, key, loaded)
		return loaded, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return zero, res.Err
	}

	value, ok := res.Val.(V)
	if !ok {
		return zero, fmt.Errorf("unexpected cached value type %T", res.Val)
	}
	return value, nil
}
