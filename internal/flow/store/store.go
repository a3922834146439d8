// Package store persists flow state between requests. Flows are JSON
// documents keyed by flow ID with a TTL; an expired flow is simply gone,
// which is how navigating away discards unsaved work.
package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// DefaultTTL bounds how long an idle flow survives.
const DefaultTTL = 2 * time.Hour

// Store is the flow persistence contract.
type Store interface {
	// Get decodes the flow under key into out, reporting whether it existed.
	Get(ctx context.Context, key string, out any) (bool, error)
	// Put stores the flow under key for ttl (DefaultTTL when ttl <= 0).
	Put(ctx context.Context, key string, value any, ttl time.Duration) error
	// Delete removes the flow under key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// Memory is an in-process Store used in tests and as the bypass when Redis
// is unavailable.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry), now: time.Now}
}

func (m *Memory) Get(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	entry, ok := m.entries[key]
	if ok && m.now().After(entry.expiresAt) {
		delete(m.entries, key)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(entry.data, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *Memory) Put(_ context.Context, key string, value any, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.entries[key] = memoryEntry{data: data, expiresAt: m.now().Add(ttl)}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}
