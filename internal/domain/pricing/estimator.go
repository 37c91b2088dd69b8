// Package pricing is the deterministic moving-price engine: rule selection,
// location handicaps, category accumulation, minimum charges, rounding and
// audit hashing.
//
// The engine performs no I/O and keeps no state between calls. The only
// host-dependent values it reads (clock and id generator) feed metadata
// that is excluded from the result hash.
package pricing

import (
	"time"

	"github.com/google/uuid"

	"moving_pricing/internal/domain/entities"
)

const (
	DefaultEngineName    = "moving-pricing-engine"
	DefaultEngineVersion = "1.0.0"
	ResultSchemaVersion  = "1.0"
)

// Stage is a step of a calculation.
//
//	Validating -> Rejected
//	Validating -> Selecting -> Accumulating -> EnforcingMinimum -> Rounding -> Hashing -> Completed
type Stage string

const (
	StageValidating       Stage = "validating"
	StageRejected         Stage = "rejected"
	StageSelecting        Stage = "selecting"
	StageAccumulating     Stage = "accumulating"
	StageEnforcingMinimum Stage = "enforcing_minimum"
	StageRounding         Stage = "rounding"
	StageHashing          Stage = "hashing"
	StageCompleted        Stage = "completed"
)

// Estimator orchestrates one calculation. It is safe for concurrent use as
// long as every call is given its own catalog snapshot.
type Estimator struct {
	engineName    string
	engineVersion string
	validator     *Validator
	now           func() time.Time
	newID         func() string
}

type Option func(*Estimator)

func WithEngine(name, version string) Option {
	return func(e *Estimator) {
		if name != "" {
			e.engineName = name
		}
		if version != "" {
			e.engineVersion = version
		}
	}
}

func WithValidator(v *Validator) Option {
	return func(e *Estimator) { e.validator = v }
}

func WithClock(now func() time.Time) Option {
	return func(e *Estimator) { e.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(e *Estimator) { e.newID = newID }
}

func NewEstimator(opts ...Option) *Estimator {
	e := &Estimator{
		engineName:    DefaultEngineName,
		engineVersion: DefaultEngineVersion,
		validator:     NewValidator(nil),
		now:           func() time.Time { return time.Now().UTC() },
		newID:         uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ValidateInput runs validation only, without pricing.
func (e *Estimator) ValidateInput(input entities.EstimateInput) entities.ValidationOutcome {
	return e.validator.Validate(input)
}

// Calculate prices input against catalog. Invalid input yields a
// *ValidationError and no result; a catalog defect yields a
// *ConfigurationError. Every rule is checked before any is evaluated, so a
// defective rule fails the calculation whether or not it would apply.
func (e *Estimator) Calculate(input entities.EstimateInput, catalog *entities.RuleCatalog, actorID string) (entities.EstimateResult, error) {
	received := input.Clone()

	outcome := e.validator.Validate(received)
	if !outcome.Valid {
		return entities.EstimateResult{}, &ValidationError{Outcome: outcome}
	}
	if catalog == nil {
		return entities.EstimateResult{}, configErrorf("", StageSelecting, "no rule catalog supplied")
	}
	if err := firstRuleDefect(catalog, StageSelecting); err != nil {
		return entities.EstimateResult{}, err
	}
	normalized := Normalize(received)

	rules, err := SelectApplicableRules(catalog, normalized)
	if err != nil {
		return entities.EstimateResult{}, err
	}
	handicaps, err := SelectHandicaps(catalog, normalized.Service, normalized.MoveDate, normalized.Pickup, normalized.Delivery)
	if err != nil {
		return entities.EstimateResult{}, err
	}

	acc, err := Accumulate(normalized, rules, handicaps)
	if err != nil {
		return entities.EstimateResult{}, err
	}

	applyMinimum(&acc, normalized.Service, catalog)

	finalPrice := RoundCurrency(acc.RunningTotal)
	calc := entities.Calculations{
		FinalPrice:   finalPrice,
		Breakdown:    assembleBreakdown(acc.Breakdown, finalPrice),
		AppliedRules: acc.AppliedRules,
	}

	inputHash, err := HashInput(received)
	if err != nil {
		return entities.EstimateResult{}, configErrorf("", StageHashing, "hashing input: %v", err)
	}
	resultHash, err := HashResult(calc, catalog.RulesVersion)
	if err != nil {
		return entities.EstimateResult{}, configErrorf("", StageHashing, "hashing result: %v", err)
	}

	return entities.EstimateResult{
		EstimateID:   e.newID(),
		Calculations: calc,
		Metadata: entities.ResultMetadata{
			CalculatedAt:  e.now(),
			CalculatedBy:  actorID,
			Version:       ResultSchemaVersion,
			RulesVersion:  catalog.RulesVersion,
			Deterministic: true,
			ResultHash:    resultHash,
			InputHash:     inputHash,
			Methodology: entities.Methodology{
				Engine:        e.engineName,
				EngineVersion: e.engineVersion,
			},
		},
	}, nil
}
