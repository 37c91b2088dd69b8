package interfaces

import (
	"context"

	"moving_pricing/internal/domain/entities"
)

// ICatalogProvider hands out the rule catalog snapshot a calculation pins.
// The returned catalog must not be mutated.
type ICatalogProvider interface {
	ActiveCatalog(ctx context.Context) (*entities.RuleCatalog, error)
}

// ICatalogStore holds the active snapshot and swaps it atomically.
type ICatalogStore interface {
	ICatalogProvider
	Publish(c entities.RuleCatalog) error
}

// ICatalogSource loads a catalog from its backing store (file, embedded
// default or Postgres).
type ICatalogSource interface {
	Load(ctx context.Context) (entities.RuleCatalog, error)
}
