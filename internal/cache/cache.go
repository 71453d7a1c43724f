// Package cache is the engine's response cache: a TTL key/value store
// keyed by route plus its query parameters. Entries are evicted lazily on
// read; there is no background sweep.
package cache

import (
	"sort"
	"strings"
	"sync"
	"time"
)

type item struct {
	value  any
	expiry time.Time
}

type Store struct {
	mu    sync.RWMutex
	items map[string]item
}

func New() *Store {
	return &Store{items: make(map[string]item)}
}

func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	it, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(it.expiry) {
		s.mu.Lock()
		delete(s.items, key)
		s.mu.Unlock()
		return nil, false
	}
	return it.value, true
}

func (s *Store) Set(key string, val any, ttl time.Duration) {
	s.mu.Lock()
	s.items[key] = item{value: val, expiry: time.Now().Add(ttl)}
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Key builds a deterministic cache key from a route and its parameters.
// Parameter names are sorted so the key is stable regardless of insertion
// order.
func Key(route string, params map[string]string) string {
	var b strings.Builder
	b.WriteString(route)
	if len(params) == 0 {
		return b.String()
	}
	names := make([]string, 0, len(params))
	for k := range params {
		names = append(names, k)
	}
	sort.Strings(names)
	b.WriteString("?")
	for i, k := range names {
		if i > 0 {
			b.WriteString("&")
		}
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(params[k])
	}
	return b.String()
}
