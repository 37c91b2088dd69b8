package pricing

import (
	"math"
	"sort"

	"moving_pricing/internal/domain/entities"
)

// Accumulation is the unrounded outcome of folding the ordered rules over a
// zeroed breakdown. Breakdown.Total equals RunningTotal.
type Accumulation struct {
	Breakdown    entities.Breakdown
	AppliedRules []entities.AppliedRule
	RunningTotal float64
}

type firing struct {
	rule     entities.PricingRule
	leg      entities.Leg
	handicap bool
	doc      document
}

// Accumulate merges pricing rules and resolved handicaps into one sequence
// ordered by priority and applies their actions in that order.
//
// Ties keep pricing rules ahead of handicaps and pickup ahead of delivery.
// add_percentage reads the running total at the moment its action fires,
// so it compounds on every earlier action, including earlier percentages.
func Accumulate(input entities.EstimateInput, rules []entities.PricingRule, handicaps []ResolvedHandicap) (Accumulation, error) {
	firings, err := orderFirings(input, rules, handicaps)
	if err != nil {
		return Accumulation{}, err
	}

	acc := Accumulation{AppliedRules: make([]entities.AppliedRule, 0, len(firings))}
	for idx, f := range firings {
		impact := 0.0
		for _, a := range f.rule.Actions {
			delta, err := applyAction(&acc.Breakdown, acc.RunningTotal, f, a)
			if err != nil {
				return Accumulation{}, err
			}
			acc.RunningTotal += delta
			impact += delta
			if !isFinite(acc.RunningTotal) {
				return Accumulation{}, configErrorf(f.rule.ID, StageAccumulating, "running total is no longer finite")
			}
		}
		applied := entities.AppliedRule{
			RuleID:           f.rule.ID,
			RuleName:         f.rule.Name,
			Priority:         f.rule.Priority,
			PriceImpact:      impact,
			ApplicationIndex: idx,
		}
		if f.handicap {
			applied.Location = f.leg
		}
		acc.AppliedRules = append(acc.AppliedRules, applied)
	}
	acc.Breakdown.Total = acc.RunningTotal
	return acc, nil
}

func orderFirings(input entities.EstimateInput, rules []entities.PricingRule, handicaps []ResolvedHandicap) ([]firing, error) {
	inputDoc, err := newInputDocument(input)
	if err != nil {
		return nil, configErrorf("", StageAccumulating, "building input document: %v", err)
	}
	pickupDoc, err := newLocationDocument(input.Pickup, entities.LegPickup)
	if err != nil {
		return nil, configErrorf("", StageAccumulating, "building pickup document: %v", err)
	}
	deliveryDoc, err := newLocationDocument(input.Delivery, entities.LegDelivery)
	if err != nil {
		return nil, configErrorf("", StageAccumulating, "building delivery document: %v", err)
	}
	legDocs := map[entities.Leg]document{
		entities.LegPickup:   pickupDoc,
		entities.LegDelivery: deliveryDoc,
	}

	firings := make([]firing, 0, len(rules)+len(handicaps))
	for _, r := range rules {
		firings = append(firings, firing{rule: r, doc: inputDoc})
	}
	for _, h := range handicaps {
		doc, ok := legDocs[h.Leg]
		if !ok {
			return nil, configErrorf(h.Rule.ID, StageAccumulating, "unknown location leg %q", h.Leg)
		}
		firings = append(firings, firing{rule: entities.PricingRule(h.Rule), leg: h.Leg, handicap: true, doc: doc})
	}
	sort.SliceStable(firings, func(i, j int) bool {
		return firings[i].rule.Priority < firings[j].rule.Priority
	})
	return firings, nil
}

// applyAction posts one action and returns its signed impact.
func applyAction(b *entities.Breakdown, runningTotal float64, f firing, a entities.Action) (float64, error) {
	target := a.Target
	if f.handicap {
		target = entities.CategoryLocationHandicaps
	}
	slot, ok := categorySlot(b, target)
	if !ok {
		return 0, configErrorf(f.rule.ID, StageAccumulating, "unknown target category %q", a.Target)
	}

	var delta float64
	switch a.Type {
	case entities.ActionAddFixed:
		delta = a.Amount
	case entities.ActionAddPercentage:
		delta = runningTotal * a.Amount / 100
	case entities.ActionAddPerUnit:
		if a.Unit == "" {
			return 0, configErrorf(f.rule.ID, StageAccumulating, "add_per_unit action has no unit")
		}
		raw, err := f.doc.lookup(a.Unit)
		if err != nil {
			return 0, configErrorf(f.rule.ID, StageAccumulating, "unit %q: %v", a.Unit, err)
		}
		units, ok := unitCount(raw)
		if !ok {
			return 0, configErrorf(f.rule.ID, StageAccumulating, "unit %q value %v is not countable", a.Unit, raw)
		}
		delta = a.Amount * units
	case entities.ActionMultiply:
		scaled := *slot * a.Amount
		delta = scaled - *slot
	default:
		return 0, configErrorf(f.rule.ID, StageAccumulating, "unknown action type %q", a.Type)
	}

	if !isFinite(delta) || !isFinite(*slot+delta) {
		return 0, configErrorf(f.rule.ID, StageAccumulating, "%s action on %s produced a non-finite amount", a.Type, target)
	}
	*slot += delta
	return delta, nil
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func categorySlot(b *entities.Breakdown, c entities.Category) (*float64, bool) {
	switch c {
	case entities.CategoryBaseLabor:
		return &b.BaseLabor, true
	case entities.CategoryMaterials:
		return &b.Materials, true
	case entities.CategoryTransportation:
		return &b.Transportation, true
	case entities.CategoryLocationHandicaps:
		return &b.LocationHandicaps, true
	case entities.CategorySpecialServices:
		return &b.SpecialServices, true
	case entities.CategoryOverhead:
		return &b.Overhead, true
	}
	return nil, false
}
