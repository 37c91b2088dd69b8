package entities

import "time"

// Operator is the comparison a Condition applies. The set is closed; any
// other value in a catalog is a configuration defect.
type Operator string

const (
	OpEquals      Operator = "equals"
	OpNotEquals   Operator = "notEquals"
	OpGreaterThan Operator = "greaterThan"
	OpLessThan    Operator = "lessThan"
	OpIn          Operator = "in"
	OpBetween     Operator = "between"
	OpExists      Operator = "exists"
)

// ActionType is the price operation an Action performs. Closed set.
type ActionType string

const (
	ActionAddFixed      ActionType = "add_fixed"
	ActionAddPercentage ActionType = "add_percentage"
	ActionAddPerUnit    ActionType = "add_per_unit"
	ActionMultiply      ActionType = "multiply"
)

// Category is a breakdown bucket an Action posts to. Closed set.
type Category string

const (
	CategoryBaseLabor         Category = "baseLabor"
	CategoryMaterials         Category = "materials"
	CategoryTransportation    Category = "transportation"
	CategoryLocationHandicaps Category = "locationHandicaps"
	CategorySpecialServices   Category = "specialServices"
	CategoryOverhead          Category = "overhead"
)

// Categories lists the breakdown buckets in presentation order.
var Categories = []Category{
	CategoryBaseLabor,
	CategoryMaterials,
	CategoryTransportation,
	CategoryLocationHandicaps,
	CategorySpecialServices,
	CategoryOverhead,
}

// Condition tests one field of the input. Value is used by the scalar
// operators; Values holds the list for "in" and the [low, high] pair for
// "between".
type Condition struct {
	Field    string   `json:"field" yaml:"field"`
	Operator Operator `json:"operator" yaml:"operator"`
	Value    any      `json:"value,omitempty" yaml:"value,omitempty"`
	Values   []any    `json:"values,omitempty" yaml:"values,omitempty"`
}

// Action changes one breakdown category. Unit names the field path whose
// value is multiplied by Amount for add_per_unit.
type Action struct {
	Type        ActionType `json:"type" yaml:"type"`
	Amount      float64    `json:"amount" yaml:"amount"`
	Target      Category   `json:"target" yaml:"target"`
	Unit        string     `json:"unit,omitempty" yaml:"unit,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
}

// PricingRule is one business pricing rule of a catalog.
//
// Priority orders evaluation: lower numbers fire earlier.
type PricingRule struct {
	ID                 string        `json:"id" yaml:"id"`
	Name               string        `json:"name" yaml:"name"`
	Description        string        `json:"description,omitempty" yaml:"description,omitempty"`
	Category           string        `json:"category" yaml:"category"`
	Priority           int           `json:"priority" yaml:"priority"`
	Conditions         []Condition   `json:"conditions" yaml:"conditions"`
	Actions            []Action      `json:"actions" yaml:"actions"`
	Active             bool          `json:"active" yaml:"active"`
	ApplicableServices []ServiceType `json:"applicableServices" yaml:"applicableServices"`
	EffectiveDate      *time.Time    `json:"effectiveDate,omitempty" yaml:"effectiveDate,omitempty"`
	ExpiryDate         *time.Time    `json:"expiryDate,omitempty" yaml:"expiryDate,omitempty"`
	Version            string        `json:"version" yaml:"version"`
}

// LocationHandicapRule has the shape of a PricingRule but its conditions
// address Location fields and its impact always lands in locationHandicaps.
type LocationHandicapRule PricingRule

// AppliesTo reports whether the rule is scoped to the given service.
// An empty service set applies to every service.
func (r PricingRule) AppliesTo(s ServiceType) bool {
	if len(r.ApplicableServices) == 0 {
		return true
	}
	for _, svc := range r.ApplicableServices {
		if svc == s {
			return true
		}
	}
	return false
}

// InEffect reports whether moveDate falls inside the rule's optional,
// inclusive effective/expiry window.
func (r PricingRule) InEffect(moveDate time.Time) bool {
	if r.EffectiveDate != nil && moveDate.Before(*r.EffectiveDate) {
		return false
	}
	if r.ExpiryDate != nil && moveDate.After(*r.ExpiryDate) {
		return false
	}
	return true
}

func (r PricingRule) clone() PricingRule {
	out := r
	if r.Conditions != nil {
		out.Conditions = make([]Condition, len(r.Conditions))
		for i, c := range r.Conditions {
			out.Conditions[i] = c
			if c.Values != nil {
				out.Conditions[i].Values = append([]any(nil), c.Values...)
			}
		}
	}
	if r.Actions != nil {
		out.Actions = append([]Action(nil), r.Actions...)
	}
	if r.ApplicableServices != nil {
		out.ApplicableServices = append([]ServiceType(nil), r.ApplicableServices...)
	}
	if r.EffectiveDate != nil {
		d := *r.EffectiveDate
		out.EffectiveDate = &d
	}
	if r.ExpiryDate != nil {
		d := *r.ExpiryDate
		out.ExpiryDate = &d
	}
	return out
}
