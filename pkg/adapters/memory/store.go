package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/togglewalk/pkg/domain"
)

// Store implements ports.ResultStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.Outcome
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.Outcome),
	}
}

// Save records the outcome for a fingerprint.
func (s *Store) Save(_ context.Context, fingerprint string, outcome domain.Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[fingerprint] = outcome
	return nil
}

// Load retrieves the outcome for a fingerprint.
func (s *Store) Load(_ context.Context, fingerprint string) (domain.Outcome, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	outcome, ok := s.data[fingerprint]
	if !ok {
		return domain.Outcome{}, domain.ErrResultNotFound
	}
	return outcome, nil
}

// Delete removes the outcome for a fingerprint.
func (s *Store) Delete(_ context.Context, fingerprint string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, fingerprint)
	return nil
}

// List returns the stored fingerprints in sorted order.
func (s *Store) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
