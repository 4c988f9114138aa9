// Package cache holds short-lived values so that queries issued in quick
// succession do not rescan every store.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultTTL is how long a value stays fresh unless configured otherwise.
const DefaultTTL = time.Second

// maxEntries bounds each store. Keys are logical query names and store
// paths, so the real population is tiny.
const maxEntries = 256

// Store is a string-keyed cache whose entries expire after a fixed TTL.
// Expired entries are swept in the background and are never returned.
// Safe for concurrent use.
type Store[V any] struct {
	lru *expirable.LRU[string, V]
	ttl time.Duration
}

// New creates a store with the given TTL. A non-positive TTL means DefaultTTL.
func New[V any](ttl time.Duration) *Store[V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store[V]{
		lru: expirable.NewLRU[string, V](maxEntries, nil, ttl),
		ttl: ttl,
	}
}

// Get returns the value for key if it is present and not expired.
func (s *Store[V]) Get(key string) (V, bool) {
	if s == nil {
		var zero V
		return zero, false
	}
	return s.lru.Get(key)
}

// Set stores value under key, replacing any previous value and restarting
// its TTL.
func (s *Store[V]) Set(key string, value V) {
	if s == nil {
		return
	}
	s.lru.Add(key, value)
}

// Invalidate drops key.
func (s *Store[V]) Invalidate(key string) {
	if s == nil {
		return
	}
	s.lru.Remove(key)
}

// Purge drops everything.
func (s *Store[V]) Purge() {
	if s == nil {
		return
	}
	s.lru.Purge()
}

// Len returns the number of entries, including ones not yet swept.
func (s *Store[V]) Len() int {
	if s == nil {
		return 0
	}
	return s.lru.Len()
}

// TTL returns the configured time to live, or 0 for a nil store.
func (s *Store[V]) TTL() time.Duration {
	if s == nil {
		return 0
	}
	return s.ttl
}
