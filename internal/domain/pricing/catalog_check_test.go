package pricing

import (
	"errors"
	"testing"
	"time"

	"moving_pricing/internal/domain/entities"
)

func TestValidateCatalog(t *testing.T) {
	t.Run("well formed catalog passes", func(t *testing.T) {
		if err := ValidateCatalog(*testCatalog()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	yesterday := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	today := yesterday.Add(24 * time.Hour)

	cases := []struct {
		name   string
		mutate func(*entities.RuleCatalog)
		ruleID string
	}{
		{"missing version", func(c *entities.RuleCatalog) { c.RulesVersion = "" }, ""},
		{"duplicate id", func(c *entities.RuleCatalog) { c.PricingRules[1].ID = "local-labor" }, "local-labor"},
		{"unknown service", func(c *entities.RuleCatalog) {
			c.PricingRules[0].ApplicableServices = []entities.ServiceType{"interstellar"}
		}, "local-labor"},
		{"inverted window", func(c *entities.RuleCatalog) {
			c.PricingRules[3].EffectiveDate = &today
			c.PricingRules[3].ExpiryDate = &yesterday
		}, "piano"},
		{"unknown field", func(c *entities.RuleCatalog) { c.PricingRules[3].Conditions[0].Field = "specialItems.harp" }, "piano"},
		{"unknown operator", func(c *entities.RuleCatalog) { c.PricingRules[3].Conditions[0].Operator = "like" }, "piano"},
		{"non numeric between", func(c *entities.RuleCatalog) { c.PricingRules[8].Conditions[0].Values = []any{"a", "b"} }, "fuel"},
		{"unknown target", func(c *entities.RuleCatalog) { c.PricingRules[3].Actions[0].Target = "tips" }, "piano"},
		{"unknown action", func(c *entities.RuleCatalog) { c.PricingRules[3].Actions[0].Type = "discount" }, "piano"},
		{"unresolvable unit", func(c *entities.RuleCatalog) { c.PricingRules[0].Actions[0].Unit = "crewDays" }, "local-labor"},
		{"handicap on input field", func(c *entities.RuleCatalog) { c.LocationHandicaps[0].Conditions[0].Field = "distance" }, "stairs"},
		{"unknown room item field", func(c *entities.RuleCatalog) {
			c.PricingRules[3].Conditions[0] = entities.Condition{Field: "rooms.0.items.0.colour", Operator: entities.OpEquals, Value: "red"}
		}, "piano"},
		{"non numeric room index", func(c *entities.RuleCatalog) {
			c.PricingRules[3].Conditions[0] = entities.Condition{Field: "rooms.first.room", Operator: entities.OpExists}
		}, "piano"},
		{"ordering on text field", func(c *entities.RuleCatalog) {
			c.PricingRules[3].Conditions[0] = entities.Condition{Field: "customerId", Operator: entities.OpGreaterThan, Value: 1}
		}, "piano"},
		{"text unit", func(c *entities.RuleCatalog) { c.PricingRules[0].Actions[0].Unit = "customerId" }, "local-labor"},
		{"negative minimum", func(c *entities.RuleCatalog) { c.MinimumCharge[entities.ServiceLocal] = -1 }, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := testCatalog()
			tc.mutate(c)
			err := ValidateCatalog(*c)
			var cerr *ConfigurationError
			if !errors.As(err, &cerr) {
				t.Fatalf("expected ConfigurationError, got %v", err)
			}
			if cerr.RuleID != tc.ruleID || cerr.Stage != StagePublishing {
				t.Fatalf("expected rule %q at publishing, got %+v", tc.ruleID, cerr)
			}
		})
	}

	t.Run("room paths resolve without listed rooms", func(t *testing.T) {
		c := testCatalog()
		c.PricingRules[3].Conditions[0] = entities.Condition{Field: "rooms.4.items.2.quantity", Operator: entities.OpGreaterThan, Value: 0}
		if err := ValidateCatalog(*c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("handicap targets are not checked", func(t *testing.T) {
		c := testCatalog()
		c.LocationHandicaps[1].Actions[0].Target = ""
		if err := ValidateCatalog(*c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
