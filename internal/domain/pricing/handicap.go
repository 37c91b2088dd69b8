package pricing

import (
	"time"

	"moving_pricing/internal/domain/entities"
)

// ResolvedHandicap is a location handicap rule that matched one leg.
type ResolvedHandicap struct {
	Rule entities.LocationHandicapRule
	Leg  entities.Leg
}

// SelectHandicaps resolves the catalog's handicap rules for each leg
// independently, using the same filter and ordering as
// SelectApplicableRules. Pickup matches come first, then delivery matches.
func SelectHandicaps(
	catalog *entities.RuleCatalog,
	service entities.ServiceType,
	moveDate time.Time,
	pickup, delivery entities.Location,
) ([]ResolvedHandicap, error) {
	if catalog == nil {
		return nil, configErrorf("", StageSelecting, "no rule catalog supplied")
	}

	rules := make([]entities.PricingRule, len(catalog.LocationHandicaps))
	for i, h := range catalog.LocationHandicaps {
		rules[i] = entities.PricingRule(h)
	}

	var out []ResolvedHandicap
	legs := []struct {
		leg entities.Leg
		loc entities.Location
	}{
		{entities.LegPickup, pickup},
		{entities.LegDelivery, delivery},
	}
	for _, l := range legs {
		doc, err := newLocationDocument(l.loc, l.leg)
		if err != nil {
			return nil, configErrorf("", StageSelecting, "building %s document: %v", l.leg, err)
		}
		matched, err := selectRules(rules, service, moveDate, doc)
		if err != nil {
			return nil, err
		}
		for _, r := range matched {
			out = append(out, ResolvedHandicap{Rule: entities.LocationHandicapRule(r), Leg: l.leg})
		}
	}
	return out, nil
}
