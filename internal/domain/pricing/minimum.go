package pricing

import (
	"moving_pricing/internal/domain/entities"
)

// MinimumChargePriority is the lowest priority reported for the synthetic
// minimum-charge ledger entry. It is raised to the last applied priority
// when that is higher so the ledger stays ordered.
const MinimumChargePriority = 10000

// MinimumChargeRuleID names the synthetic ledger entry for a service.
func MinimumChargeRuleID(service entities.ServiceType) string {
	return "minimum_charge_" + string(service)
}

// EnforceMinimum raises total to the catalog floor for service. It never
// lowers a total. topUp is the amount added (zero when none).
func EnforceMinimum(total float64, service entities.ServiceType, catalog *entities.RuleCatalog) (adjusted float64, topUp float64) {
	if catalog == nil {
		return total, 0
	}
	floor, ok := catalog.MinimumCharge[service]
	if !ok || total >= floor {
		return total, 0
	}
	return floor, floor - total
}

// applyMinimum posts the top-up to baseLabor and appends the synthetic
// ledger entry.
func applyMinimum(acc *Accumulation, service entities.ServiceType, catalog *entities.RuleCatalog) {
	adjusted, topUp := EnforceMinimum(acc.RunningTotal, service, catalog)
	if topUp == 0 {
		return
	}

	priority := MinimumChargePriority
	if n := len(acc.AppliedRules); n > 0 && acc.AppliedRules[n-1].Priority > priority {
		priority = acc.AppliedRules[n-1].Priority
	}

	acc.Breakdown.BaseLabor += topUp
	acc.RunningTotal = adjusted
	acc.Breakdown.Total = adjusted
	acc.AppliedRules = append(acc.AppliedRules, entities.AppliedRule{
		RuleID:           MinimumChargeRuleID(service),
		RuleName:         "Minimum charge (" + string(service) + ")",
		Priority:         priority,
		PriceImpact:      topUp,
		ApplicationIndex: len(acc.AppliedRules),
	})
}
