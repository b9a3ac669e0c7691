package catalog

import (
	"errors"
	"sync/atomic"

	"github.com/wonny/cryptoadvisor/internal/contracts"
)

// Store holds the current snapshot.
// Replace swaps the pointer; readers that already hold the old snapshot keep using it.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store seeded with an initial snapshot
func NewStore(initial *Snapshot) (*Store, error) {
	if initial == nil {
		return nil, errors.New("catalog store requires an initial snapshot")
	}
	s := &Store{}
	s.current.Store(initial)
	return s, nil
}

// Current returns the snapshot visible to new callers
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Catalog returns the current snapshot as a contracts.Catalog
func (s *Store) Catalog() contracts.Catalog {
	return s.current.Load()
}

// Replace installs next and returns the previous snapshot
func (s *Store) Replace(next *Snapshot) (*Snapshot, error) {
	if next == nil {
		return nil, errors.New("cannot replace catalog with nil snapshot")
	}
	return s.current.Swap(next), nil
}
