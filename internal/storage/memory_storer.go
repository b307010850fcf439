package storage

import (
	"context"
	"slices"
	"sync"
)

// MemoryStorer keeps saved records in memory. Useful for dry runs and tests.
type MemoryStorer[T any] struct {
	mu      sync.RWMutex
	records []T
	closed  bool
}

func NewMemoryStorer[T any]() *MemoryStorer[T] {
	return &MemoryStorer[T]{}
}

func (s *MemoryStorer[T]) Save(_ context.Context, record T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStorerClosed
	}
	s.records = append(s.records, record)
	return nil
}

// Records returns a copy of the saved records in arrival order.
func (s *MemoryStorer[T]) Records() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

func (s *MemoryStorer[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
