package response

import (
	"time"

	"moving_pricing/internal/domain/entities"
)

type EstimateResponse struct {
	ID           string                  `json:"id"`
	CustomerID   string                  `json:"customer_id"`
	Service      string                  `json:"service"`
	Status       string                  `json:"status"`
	FinalPrice   float64                 `json:"final_price"`
	RulesVersion string                  `json:"rules_version"`
	InputHash    string                  `json:"input_hash"`
	ResultHash   string                  `json:"result_hash"`
	Result       entities.EstimateResult `json:"result"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

func FromEstimateRecord(e entities.EstimateRecord) EstimateResponse {
	return EstimateResponse{
		ID:           e.ID,
		CustomerID:   e.CustomerID,
		Service:      string(e.Service),
		Status:       string(e.Status),
		FinalPrice:   e.FinalPrice,
		RulesVersion: e.RulesVersion,
		InputHash:    e.InputHash,
		ResultHash:   e.ResultHash,
		Result:       e.Result,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// ValidationResponse always carries an errors array, empty when valid.
type ValidationResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func FromValidationOutcome(o entities.ValidationOutcome) ValidationResponse {
	errs := o.Errors
	if errs == nil {
		errs = []string{}
	}
	return ValidationResponse{Valid: o.Valid, Errors: errs}
}

type CatalogResponse struct {
	RulesVersion      string             `json:"rules_version"`
	PricingRules      int                `json:"pricing_rules"`
	LocationHandicaps int                `json:"location_handicaps"`
	MinimumCharge     map[string]float64 `json:"minimum_charge"`
}

func FromCatalogSummary(s entities.CatalogSummary) CatalogResponse {
	minimums := make(map[string]float64, len(s.MinimumCharge))
	for svc, amount := range s.MinimumCharge {
		minimums[string(svc)] = amount
	}
	return CatalogResponse{
		RulesVersion:      s.RulesVersion,
		PricingRules:      s.PricingRules,
		LocationHandicaps: s.LocationHandicaps,
		MinimumCharge:     minimums,
	}
}
