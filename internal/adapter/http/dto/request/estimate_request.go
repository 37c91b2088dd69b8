package request

import (
	"strings"

	"moving_pricing/internal/domain/entities"
)

// EstimateRequest is the payload of POST /v1/estimates.
//
// ActorID identifies who requested the calculation; when empty the
// X-Actor-ID header is used.
type EstimateRequest struct {
	ActorID string                  `json:"actor_id"`
	Input   *entities.EstimateInput `json:"input" binding:"required"`
}

func (r EstimateRequest) ResolveActorID(header string) string {
	if v := strings.TrimSpace(r.ActorID); v != "" {
		return v
	}
	return strings.TrimSpace(header)
}

// StatusRequest is the payload of PATCH /v1/estimates/{id}/status.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r StatusRequest) ResolveStatus() entities.QuoteStatus {
	return entities.QuoteStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}
