// Package cache provides the in-process store that keeps loaded rule
// and agent documents keyed by project root.
//
// Keys are the literal root strings supplied by callers. No path
// normalization happens here, so two spellings of the same directory
// are distinct entries. The store is injected into each repository
// component: tests construct their own instance instead of sharing
// process-global state.
package cache

import "sync"

// Store is the key/value contract repositories depend on. A Set for
// an existing key replaces the whole value; values are published
// complete and never mutated in place afterwards.
type Store[V any] interface {
	// Get returns the value for key and whether an entry exists.
	Get(key string) (V, bool)
	// Set stores value under key, replacing any previous entry.
	Set(key string, value V)
	// Delete removes the entry for key, if any.
	Delete(key string)
	// Clear removes every entry.
	Clear()
	// Keys returns the current keys in unspecified order.
	Keys() []string
}

// Memory is the mutex-guarded map implementation of Store used in
// production. Reads around a concurrent Set observe either the old
// or the new value, never a partial one.
type Memory[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
}

// NewMemory creates an empty in-memory store.
func NewMemory[V any]() *Memory[V] {
	return &Memory[V]{entries: make(map[string]V)}
}

// Get returns the value for key and whether an entry exists.
func (m *Memory[V]) Get(key string) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.entries[key]
	return v, ok
}

// Set stores value under key, replacing any previous entry.
func (m *Memory[V]) Set(key string, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = value
}

// Delete removes the entry for key, if any.
func (m *Memory[V]) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
}

// Clear removes every entry.
func (m *Memory[V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]V)
}

// Keys returns the current keys in unspecified order.
func (m *Memory[V]) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	return keys
}
