package pricing

import (
	"sort"
	"time"

	"moving_pricing/internal/domain/entities"
)

// SelectApplicableRules returns the catalog's pricing rules that apply to
// input, stably ordered by ascending priority. Rules with equal priority
// keep their catalog order.
func SelectApplicableRules(catalog *entities.RuleCatalog, input entities.EstimateInput) ([]entities.PricingRule, error) {
	if catalog == nil {
		return nil, configErrorf("", StageSelecting, "no rule catalog supplied")
	}
	doc, err := newInputDocument(input)
	if err != nil {
		return nil, configErrorf("", StageSelecting, "building input document: %v", err)
	}
	return selectRules(catalog.PricingRules, input.Service, input.MoveDate, doc)
}

func selectRules(rules []entities.PricingRule, service entities.ServiceType, moveDate time.Time, doc document) ([]entities.PricingRule, error) {
	selected := make([]entities.PricingRule, 0, len(rules))
	for _, r := range rules {
		if !r.Active || !r.AppliesTo(service) || !r.InEffect(moveDate) {
			continue
		}
		ok, err := matchesAll(doc, r.Conditions)
		if err != nil {
			return nil, configErrorf(r.ID, StageSelecting, "%v", err)
		}
		if ok {
			selected = append(selected, r)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Priority < selected[j].Priority
	})
	return selected, nil
}
