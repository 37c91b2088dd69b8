package entities

// RuleCatalog is one published, versioned set of pricing rules. A catalog
// handed to a calculation is never mutated; updates publish a new value.
type RuleCatalog struct {
	RulesVersion      string                  `json:"rulesVersion" yaml:"rulesVersion"`
	PricingRules      []PricingRule           `json:"pricingRules" yaml:"pricingRules"`
	LocationHandicaps []LocationHandicapRule  `json:"locationHandicaps" yaml:"locationHandicaps"`
	MinimumCharge     map[ServiceType]float64 `json:"minimumCharge" yaml:"minimumCharge"`
}

// Clone returns a deep copy of the catalog.
func (c RuleCatalog) Clone() RuleCatalog {
	out := RuleCatalog{RulesVersion: c.RulesVersion}
	if c.PricingRules != nil {
		out.PricingRules = make([]PricingRule, len(c.PricingRules))
		for i, r := range c.PricingRules {
			out.PricingRules[i] = r.clone()
		}
	}
	if c.LocationHandicaps != nil {
		out.LocationHandicaps = make([]LocationHandicapRule, len(c.LocationHandicaps))
		for i, h := range c.LocationHandicaps {
			out.LocationHandicaps[i] = LocationHandicapRule(PricingRule(h).clone())
		}
	}
	if c.MinimumCharge != nil {
		out.MinimumCharge = make(map[ServiceType]float64, len(c.MinimumCharge))
		for k, v := range c.MinimumCharge {
			out.MinimumCharge[k] = v
		}
	}
	return out
}

// CatalogSummary is the public view of the active catalog.
type CatalogSummary struct {
	RulesVersion      string                  `json:"rules_version"`
	PricingRules      int                     `json:"pricing_rules"`
	LocationHandicaps int                     `json:"location_handicaps"`
	MinimumCharge     map[ServiceType]float64 `json:"minimum_charge"`
}

func (c RuleCatalog) Summary() CatalogSummary {
	return CatalogSummary{
		RulesVersion:      c.RulesVersion,
		PricingRules:      len(c.PricingRules),
		LocationHandicaps: len(c.LocationHandicaps),
		MinimumCharge:     c.Clone().MinimumCharge,
	}
}
