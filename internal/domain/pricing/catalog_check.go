package pricing

import (
	"errors"
	"fmt"

	"moving_pricing/internal/domain/entities"
)

// StagePublishing is reported by ValidateCatalog; catalogs are checked
// before they become the active snapshot.
const StagePublishing Stage = "publishing"

// ValidateCatalog checks every rule of c against the closed sets of
// operators, action types and categories and against the input schema. It
// returns all defects joined, each a *ConfigurationError.
func ValidateCatalog(c entities.RuleCatalog) error {
	schema, err := newRuleSchema()
	if err != nil {
		return err
	}

	var errs []error
	if c.RulesVersion == "" {
		errs = append(errs, configErrorf("", StagePublishing, "catalog has no rulesVersion"))
	}
	seen := make(map[string]bool)
	for _, r := range c.PricingRules {
		errs = append(errs, checkRuleHeader(r, seen)...)
		errs = append(errs, schema.check(r, false, StagePublishing)...)
	}
	seenHandicaps := make(map[string]bool)
	for _, h := range c.LocationHandicaps {
		r := entities.PricingRule(h)
		errs = append(errs, checkRuleHeader(r, seenHandicaps)...)
		errs = append(errs, schema.check(r, true, StagePublishing)...)
	}
	for svc, amount := range c.MinimumCharge {
		if !svc.IsValid() {
			errs = append(errs, configErrorf("", StagePublishing, "minimum charge for unknown service %q", svc))
		}
		if amount < 0 {
			errs = append(errs, configErrorf("", StagePublishing, "minimum charge for %q is negative", svc))
		}
	}
	return errors.Join(errs...)
}

// firstRuleDefect checks the fields, operators and actions of every rule in
// c, active or not, and returns the first defect found.
func firstRuleDefect(c *entities.RuleCatalog, stage Stage) error {
	schema, err := newRuleSchema()
	if err != nil {
		return configErrorf("", stage, "building rule schema: %v", err)
	}
	for _, r := range c.PricingRules {
		if errs := schema.check(r, false, stage); len(errs) > 0 {
			return errs[0]
		}
	}
	for _, h := range c.LocationHandicaps {
		if errs := schema.check(entities.PricingRule(h), true, stage); len(errs) > 0 {
			return errs[0]
		}
	}
	return nil
}

func checkRuleHeader(r entities.PricingRule, seen map[string]bool) []error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, configErrorf(r.ID, StagePublishing, format, args...))
	}

	if r.ID == "" {
		fail("rule %q has no id", r.Name)
	} else if seen[r.ID] {
		fail("duplicate rule id")
	}
	seen[r.ID] = true

	for _, svc := range r.ApplicableServices {
		if !svc.IsValid() {
			fail("unknown applicable service %q", svc)
		}
	}
	if r.EffectiveDate != nil && r.ExpiryDate != nil && r.ExpiryDate.Before(*r.EffectiveDate) {
		fail("expiry date precedes effective date")
	}
	return errs
}

// ruleSchema holds exemplar documents for the input and for one location.
type ruleSchema struct {
	input    document
	location document
}

func newRuleSchema() (ruleSchema, error) {
	exemplar := entities.EstimateInput{
		Rooms: []entities.RoomInventory{{Items: []entities.InventoryItem{{}}}},
	}
	input, err := newInputDocument(exemplar)
	if err != nil {
		return ruleSchema{}, err
	}
	location, err := newLocationDocument(entities.Location{}, entities.LegPickup)
	if err != nil {
		return ruleSchema{}, err
	}
	return ruleSchema{input: input, location: location}, nil
}

func (s ruleSchema) check(r entities.PricingRule, handicap bool, stage Stage) []error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, configErrorf(r.ID, stage, format, args...))
	}
	doc := s.input
	if handicap {
		doc = s.location
	}

	for _, c := range r.Conditions {
		exemplar, err := doc.schemaLookup(c.Field)
		if err != nil {
			fail("condition field %q: %v", c.Field, err)
			continue
		}
		if err := checkOperator(c, exemplar); err != nil {
			fail("%v", err)
		}
	}

	for _, a := range r.Actions {
		if !handicap {
			if _, ok := categorySlot(&entities.Breakdown{}, a.Target); !ok {
				fail("unknown target category %q", a.Target)
			}
		}
		switch a.Type {
		case entities.ActionAddFixed, entities.ActionAddPercentage, entities.ActionMultiply:
		case entities.ActionAddPerUnit:
			if a.Unit == "" {
				fail("add_per_unit action has no unit")
				continue
			}
			exemplar, err := doc.schemaLookup(a.Unit)
			if err != nil {
				fail("unit %q: %v", a.Unit, err)
			} else if _, ok := unitCount(exemplar); !ok {
				fail("unit %q is not a countable field", a.Unit)
			}
		default:
			fail("unknown action type %q", a.Type)
		}
	}
	return errs
}

// checkOperator checks c's operator and operands, and that ordering
// operators address a numeric field.
func checkOperator(c entities.Condition, exemplar any) error {
	switch c.Operator {
	case entities.OpEquals, entities.OpNotEquals:
		return nil
	case entities.OpGreaterThan, entities.OpLessThan:
		if _, ok := toNumber(c.Value); !ok {
			return fmt.Errorf("condition on %q: operand %v is not numeric", c.Field, c.Value)
		}
		return numericSchemaField(c, exemplar)
	case entities.OpIn:
		_, err := listOperand(c)
		return err
	case entities.OpBetween:
		if _, _, err := betweenBounds(c); err != nil {
			return err
		}
		return numericSchemaField(c, exemplar)
	case entities.OpExists:
		if c.Value == nil {
			return nil
		}
		if _, ok := c.Value.(bool); !ok {
			return fmt.Errorf("condition on %q: exists expects a boolean value, got %v", c.Field, c.Value)
		}
		return nil
	default:
		return fmt.Errorf("condition on %q: unknown operator %q", c.Field, c.Operator)
	}
}

func numericSchemaField(c entities.Condition, exemplar any) error {
	if _, ok := toNumber(exemplar); !ok {
		return fmt.Errorf("condition on %q: %s needs a numeric field", c.Field, c.Operator)
	}
	return nil
}
