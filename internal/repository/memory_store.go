package repository

import (
	"context"
	"sync"
)

// memoryStore implements SlotStore in process memory.
type memoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemoryStore creates an empty in-memory slot store.
func NewMemoryStore() SlotStore {
	return &memoryStore{slots: make(map[string][]byte)}
}

// Get returns a copy of the value under key.
func (s *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.slots[key]
	if !ok {
		return nil, nil
	}
	return append([]byte{}, v...), nil
}

// PutAll stores copies of every slot under one lock.
func (s *memoryStore) PutAll(ctx context.Context, slots map[string][]byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range slots {
		s.slots[k] = append([]byte{}, v...)
	}
	return nil
}

// Close is a no-op.
func (s *memoryStore) Close() error {
	return nil
}
