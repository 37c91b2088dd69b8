package catalog

import (
	"context"
	"errors"
	"sync/atomic"

	"moving_pricing/internal/domain/entities"
	"moving_pricing/internal/domain/pricing"
	"moving_pricing/internal/usecase/interfaces"
)

var ErrNoActiveCatalog = errors.New("no rule catalog has been published")

// SnapshotStore holds the active rule catalog. Readers get the pointer that
// was current when they asked; Publish swaps in a new value and never
// mutates a published one.
type SnapshotStore struct {
	current atomic.Pointer[entities.RuleCatalog]
}

var _ interfaces.ICatalogStore = (*SnapshotStore)(nil)

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Publish validates c and makes a private copy of it the active snapshot.
// An invalid catalog leaves the current snapshot in place.
func (s *SnapshotStore) Publish(c entities.RuleCatalog) error {
	if err := pricing.ValidateCatalog(c); err != nil {
		return err
	}
	snapshot := c.Clone()
	s.current.Store(&snapshot)
	return nil
}

func (s *SnapshotStore) ActiveCatalog(_ context.Context) (*entities.RuleCatalog, error) {
	c := s.current.Load()
	if c == nil {
		return nil, ErrNoActiveCatalog
	}
	return c, nil
}
