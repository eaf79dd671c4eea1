package cache

import (
	"context"
	"sync"
	"time"
)

// Memory is a TTL cache held in process memory; always available as the
// fallback when no remote cache is configured.
type Memory struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
	now   func() time.Time
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// NewMemory builds an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{
		items: make(map[string]memoryEntry),
		now:   time.Now,
	}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	entry, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if m.now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.items, key)
		m.mu.Unlock()
		return nil, false, nil
	}
	value := make([]byte, len(entry.value))
	copy(value, entry.value)
	return value, true, nil
}

func (m *Memory) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	m.mu.Lock()
	m.items[key] = memoryEntry{value: stored, expiresAt: m.now().Add(ttl)}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
	return nil
}

var _ Cache = (*Memory)(nil)
