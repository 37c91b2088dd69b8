package entities

import "time"

// Breakdown holds the categorized subtotals. Total is the sum of the six
// categories.
type Breakdown struct {
	BaseLabor         float64 `json:"baseLabor"`
	Materials         float64 `json:"materials"`
	Transportation    float64 `json:"transportation"`
	LocationHandicaps float64 `json:"locationHandicaps"`
	SpecialServices   float64 `json:"specialServices"`
	Overhead          float64 `json:"overhead"`
	Total             float64 `json:"total"`
}

// Leg identifies which location a handicap rule fired for.
type Leg string

const (
	LegPickup   Leg = "pickup"
	LegDelivery Leg = "delivery"
)

// AppliedRule is one ledger entry of a calculation.
type AppliedRule struct {
	RuleID           string  `json:"ruleId"`
	RuleName         string  `json:"ruleName"`
	Priority         int     `json:"priority"`
	PriceImpact      float64 `json:"priceImpact"`
	ApplicationIndex int     `json:"applicationIndex"`
	Location         Leg     `json:"location,omitempty"`
}

type Calculations struct {
	FinalPrice   float64       `json:"finalPrice"`
	Breakdown    Breakdown     `json:"breakdown"`
	AppliedRules []AppliedRule `json:"appliedRules"`
}

type Methodology struct {
	Engine        string `json:"engine"`
	EngineVersion string `json:"engineVersion"`
}

type ResultMetadata struct {
	CalculatedAt  time.Time   `json:"calculatedAt"`
	CalculatedBy  string      `json:"calculatedBy"`
	Version       string      `json:"version"`
	RulesVersion  string      `json:"rulesVersion"`
	Deterministic bool        `json:"deterministic"`
	ResultHash    string      `json:"resultHash"`
	InputHash     string      `json:"inputHash"`
	Methodology   Methodology `json:"methodology"`
}

// EstimateResult is the full output of one calculation.
type EstimateResult struct {
	EstimateID   string         `json:"estimateId"`
	Calculations Calculations   `json:"calculations"`
	Metadata     ResultMetadata `json:"metadata"`
}

// ValidationOutcome is returned instead of a result when input is rejected.
type ValidationOutcome struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}
