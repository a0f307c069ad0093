// Package cache is a TTL map cache with singleflight-protected loads. It
// backs the read-side repository decorators and the stats service.
package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fifahub/liga-tracker/internal/platform/resilience"
)

type record struct {
	value    any
	deadline time.Time
}

func (r record) expired(now time.Time) bool {
	return !r.deadline.IsZero() && !r.deadline.After(now)
}

type Store struct {
	mu     sync.RWMutex
	byKey  map[string]record
	ttl    time.Duration
	flight resilience.SingleFlight
}

// NewStore builds a cache where every entry lives for ttl. A non-positive
// ttl keeps entries until they are invalidated.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		byKey: make(map[string]record),
		ttl:   ttl,
	}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	rec, ok := s.byKey[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if rec.expired(time.Now()) {
		s.mu.Lock()
		delete(s.byKey, key)
		s.mu.Unlock()
		return nil, false
	}

	return rec.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	rec := record{value: value}
	if s.ttl > 0 {
		rec.deadline = time.Now().Add(s.ttl)
	}

	s.mu.Lock()
	s.byKey[key] = rec
	s.mu.Unlock()
}

func (s *Store) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.byKey, key)
	s.mu.Unlock()
}

// DeletePrefix invalidates every key in a namespace, e.g. "motm:".
func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}

	s.mu.Lock()
	for key := range s.byKey {
		if strings.HasPrefix(key, prefix) {
			delete(s.byKey, key)
		}
	}
	s.mu.Unlock()
}

// GetOrLoad returns the cached value or runs loader once per key, caching
// the result. Concurrent misses for the same key share one load.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.Set(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}
