package pricing

import (
	"math"
	"time"

	"moving_pricing/internal/domain/entities"
)

// testCatalog prices a local move at $60 per crew hour plus $2 per mile and
// a long-distance move at $0.50 per lb plus $1 per mile.
func testCatalog() *entities.RuleCatalog {
	local := []entities.ServiceType{entities.ServiceLocal}
	longDistance := []entities.ServiceType{entities.ServiceLongDistance}

	return &entities.RuleCatalog{
		RulesVersion: "test-2026.10",
		MinimumCharge: map[entities.ServiceType]float64{
			entities.ServiceLocal:        350,
			entities.ServiceLongDistance: 1500,
			entities.ServiceStorage:      200,
			entities.ServicePackingOnly:  250,
		},
		PricingRules: []entities.PricingRule{
			{
				ID: "local-labor", Name: "Local hourly labor", Category: "labor", Priority: 10, Active: true,
				ApplicableServices: local,
				Actions:            []entities.Action{{Type: entities.ActionAddPerUnit, Amount: 60, Target: entities.CategoryBaseLabor, Unit: "crewHours"}},
			},
			{
				ID: "long-distance-linehaul", Name: "Linehaul", Category: "transport", Priority: 10, Active: true,
				ApplicableServices: longDistance,
				Actions: []entities.Action{
					{Type: entities.ActionAddPerUnit, Amount: 0.5, Target: entities.CategoryTransportation, Unit: "totalWeight"},
					{Type: entities.ActionAddPerUnit, Amount: 1, Target: entities.CategoryTransportation, Unit: "distance"},
				},
			},
			{
				ID: "local-travel", Name: "Local travel", Category: "transport", Priority: 20, Active: true,
				ApplicableServices: local,
				Actions:            []entities.Action{{Type: entities.ActionAddPerUnit, Amount: 2, Target: entities.CategoryTransportation, Unit: "distance"}},
			},
			{
				ID: "piano", Name: "Piano handling", Category: "special", Priority: 30, Active: true,
				Conditions: []entities.Condition{{Field: "specialItems.piano", Operator: entities.OpEquals, Value: true}},
				Actions:    []entities.Action{{Type: entities.ActionAddFixed, Amount: 250, Target: entities.CategorySpecialServices}},
			},
			{
				ID: "fragile", Name: "Fragile packing", Category: "materials", Priority: 30, Active: true,
				Conditions: []entities.Condition{{Field: "specialItems.fragileItems", Operator: entities.OpGreaterThan, Value: 0}},
				Actions:    []entities.Action{{Type: entities.ActionAddPerUnit, Amount: 5, Target: entities.CategoryMaterials, Unit: "specialItems.fragileItems"}},
			},
			{
				ID: "weekend", Name: "Weekend surcharge", Category: "surcharge", Priority: 50, Active: true,
				Conditions: []entities.Condition{{Field: "isWeekend", Operator: entities.OpEquals, Value: true}},
				Actions:    []entities.Action{{Type: entities.ActionAddPercentage, Amount: 10, Target: entities.CategoryOverhead}},
			},
			{
				ID: "holiday", Name: "Holiday surcharge", Category: "surcharge", Priority: 50, Active: true,
				Conditions: []entities.Condition{{Field: "isHoliday", Operator: entities.OpEquals, Value: true}},
				Actions:    []entities.Action{{Type: entities.ActionAddPercentage, Amount: 20, Target: entities.CategoryOverhead}},
			},
			{
				ID: "retired-flat-fee", Name: "Retired flat fee", Category: "overhead", Priority: 5, Active: false,
				Actions: []entities.Action{{Type: entities.ActionAddFixed, Amount: 1000, Target: entities.CategoryOverhead}},
			},
			{
				ID: "fuel", Name: "Fuel surcharge", Category: "surcharge", Priority: 60, Active: true,
				ApplicableServices: longDistance,
				Conditions:         []entities.Condition{{Field: "distance", Operator: entities.OpBetween, Values: []any{100, 3000}}},
				Actions:            []entities.Action{{Type: entities.ActionAddPercentage, Amount: 5, Target: entities.CategoryTransportation}},
			},
		},
		LocationHandicaps: []entities.LocationHandicapRule{
			{
				ID: "stairs", Name: "Stairs", Category: "access", Priority: 25, Active: true,
				Conditions: []entities.Condition{{Field: "stairsCount", Operator: entities.OpGreaterThan, Value: 0}},
				Actions:    []entities.Action{{Type: entities.ActionAddPerUnit, Amount: 15, Target: entities.CategoryBaseLabor, Unit: "stairsCount"}},
			},
			{
				ID: "high-floor-no-elevator", Name: "High floor without elevator", Category: "access", Priority: 25, Active: true,
				Conditions: []entities.Condition{
					{Field: "floorLevel", Operator: entities.OpGreaterThan, Value: 2},
					{Field: "hasElevator", Operator: entities.OpEquals, Value: false},
				},
				Actions: []entities.Action{{Type: entities.ActionAddFixed, Amount: 75}},
			},
		},
	}
}

// baseInput prices at 2 crew x 4 h x $60 + 10 mi x $2 = $500 in testCatalog.
func baseInput() entities.EstimateInput {
	return entities.EstimateInput{
		CustomerID:        "cust-1",
		Service:           entities.ServiceLocal,
		MoveDate:          time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC),
		Pickup:            entities.Location{Address: "1 Main St", AccessDifficulty: entities.AccessEasy},
		Delivery:          entities.Location{Address: "9 Elm St", AccessDifficulty: entities.AccessEasy},
		TotalWeight:       3000,
		TotalVolume:       400,
		Distance:          10,
		EstimatedDuration: 4,
		CrewSize:          2,
		SeasonalPeriod:    entities.SeasonStandard,
	}
}

func fixedEstimator() *Estimator {
	at := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	return NewEstimator(
		WithClock(func() time.Time { return at }),
		WithIDGenerator(func() string { return "est-fixed" }),
	)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func ruleIDs(rules []entities.AppliedRule) []string {
	ids := make([]string, len(rules))
	for i, r := range rules {
		ids[i] = r.RuleID
	}
	return ids
}

func hasRule(rules []entities.AppliedRule, id string) bool {
	for _, r := range rules {
		if r.RuleID == id {
			return true
		}
	}
	return false
}

func categorySum(b entities.Breakdown) float64 {
	return b.BaseLabor + b.Materials + b.Transportation + b.LocationHandicaps + b.SpecialServices + b.Overhead
}
