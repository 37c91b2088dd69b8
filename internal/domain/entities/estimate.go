package entities

import "time"

// QuoteStatus represents the lifecycle of a stored estimate (quote).
//
// Lifecycle:
//   - draft: created by CalculateEstimate
//   - sent -> viewed -> accepted | rejected
//   - revised: superseded by a new calculation; may be sent again
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusViewed   QuoteStatus = "viewed"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusRevised  QuoteStatus = "revised"
)

var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusDraft:    {QuoteStatusSent, QuoteStatusRevised},
	QuoteStatusSent:     {QuoteStatusViewed, QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusRevised},
	QuoteStatusViewed:   {QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusRevised},
	QuoteStatusRejected: {QuoteStatusRevised},
	QuoteStatusRevised:  {QuoteStatusSent},
}

func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusViewed, QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusRevised:
		return true
	}
	return false
}

// CanTransitionTo reports whether next is a legal successor of s.
// accepted is terminal.
func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	for _, allowed := range quoteTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// EstimateRecord is a calculated estimate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (the estimate id generated by the engine)
//
// Result is kept verbatim so the stored hashes can be recomputed later.
type EstimateRecord struct {
	ID           string         `json:"id"`
	CustomerID   string         `json:"customer_id"`
	Service      ServiceType    `json:"service"`
	Status       QuoteStatus    `json:"status"`
	FinalPrice   float64        `json:"final_price"`
	RulesVersion string         `json:"rules_version"`
	InputHash    string         `json:"input_hash"`
	ResultHash   string         `json:"result_hash"`
	Result       EstimateResult `json:"result"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// AuditEvent is the record exported for third-party hash verification.
type AuditEvent struct {
	EstimateID   string    `json:"estimate_id"`
	CustomerID   string    `json:"customer_id"`
	CalculatedBy string    `json:"calculated_by"`
	RulesVersion string    `json:"rules_version"`
	FinalPrice   float64   `json:"final_price"`
	InputHash    string    `json:"input_hash"`
	ResultHash   string    `json:"result_hash"`
	CalculatedAt time.Time `json:"calculated_at"`
}

func NewAuditEvent(customerID string, r EstimateResult) AuditEvent {
	return AuditEvent{
		EstimateID:   r.EstimateID,
		CustomerID:   customerID,
		CalculatedBy: r.Metadata.CalculatedBy,
		RulesVersion: r.Metadata.RulesVersion,
		FinalPrice:   r.Calculations.FinalPrice,
		InputHash:    r.Metadata.InputHash,
		ResultHash:   r.Metadata.ResultHash,
		CalculatedAt: r.Metadata.CalculatedAt,
	}
}
