package interfaces

import (
	"context"

	"moving_pricing/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for calculated estimates.
//
// The pricing service must be able to:
//   - store every calculated estimate as a draft quote
//   - read a quote back by id
//   - move a quote through its lifecycle without losing concurrent updates
//
// Implementations return a zero EstimateRecord (empty ID) when the record
// does not exist or, for UpdateStatusByID, when its status is no longer from.
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.EstimateRecord) (entities.EstimateRecord, error)
	GetByID(ctx context.Context, id string) (entities.EstimateRecord, error)
	UpdateStatusByID(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.EstimateRecord, error)
}
