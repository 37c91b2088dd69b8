package interfaces

import (
	"context"

	"moving_pricing/internal/domain/entities"
)

// IAuditPublisher exports estimate hashes for third-party verification.
type IAuditPublisher interface {
	Publish(ctx context.Context, event entities.AuditEvent) error
}
