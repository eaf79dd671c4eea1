package memory

import (
	"context"
	"sync"

	"staycove/internal/domain/property"
)

// FeeConfigStore keeps per-property fee overrides in memory.
type FeeConfigStore struct {
	mu    sync.RWMutex
	items map[property.ID]property.FeeConfig
}

// NewFeeConfigStore builds an empty store.
func NewFeeConfigStore() *FeeConfigStore {
	return &FeeConfigStore{items: make(map[property.ID]property.FeeConfig)}
}

// Set stores a property's fee overrides.
func (s *FeeConfigStore) Set(id property.ID, cfg property.FeeConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[id] = cfg
}

// FeeConfig returns the overrides or ErrFeeConfigNotFound.
func (s *FeeConfigStore) FeeConfig(ctx context.Context, id property.ID) (property.FeeConfig, error) {
	if err := ctx.Err(); err != nil {
		return property.FeeConfig{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg, ok := s.items[id]
	if !ok {
		return property.FeeConfig{}, property.ErrFeeConfigNotFound
	}
	return cfg, nil
}

var _ property.ConfigSource = (*FeeConfigStore)(nil)
