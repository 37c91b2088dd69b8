package pricing

import (
	"fmt"

	"moving_pricing/internal/domain/entities"
)

// matchesAll reports whether every condition holds against doc. An empty
// condition list always matches.
func matchesAll(doc document, conds []entities.Condition) (bool, error) {
	for _, c := range conds {
		ok, err := evaluateCondition(doc, c)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func evaluateCondition(doc document, c entities.Condition) (bool, error) {
	actual, err := doc.lookup(c.Field)
	if err != nil {
		return false, fmt.Errorf("condition field %q: %w", c.Field, err)
	}

	switch c.Operator {
	case entities.OpEquals:
		return valuesEqual(actual, c.Value), nil
	case entities.OpNotEquals:
		return !valuesEqual(actual, c.Value), nil
	case entities.OpGreaterThan, entities.OpLessThan:
		bound, ok := toNumber(c.Value)
		if !ok {
			return false, fmt.Errorf("condition on %q: operand %v is not numeric", c.Field, c.Value)
		}
		if actual == nil {
			return false, nil
		}
		a, err := numericField(c, actual)
		if err != nil {
			return false, err
		}
		if c.Operator == entities.OpGreaterThan {
			return a > bound, nil
		}
		return a < bound, nil
	case entities.OpIn:
		list, err := listOperand(c)
		if err != nil {
			return false, err
		}
		for _, v := range list {
			if valuesEqual(actual, v) {
				return true, nil
			}
		}
		return false, nil
	case entities.OpBetween:
		lo, hi, err := betweenBounds(c)
		if err != nil {
			return false, err
		}
		if actual == nil {
			return false, nil
		}
		v, err := numericField(c, actual)
		if err != nil {
			return false, err
		}
		return v >= lo && v <= hi, nil
	case entities.OpExists:
		want := true
		if c.Value != nil {
			b, ok := c.Value.(bool)
			if !ok {
				return false, fmt.Errorf("condition on %q: exists expects a boolean value, got %v", c.Field, c.Value)
			}
			want = b
		}
		return present(actual) == want, nil
	default:
		return false, fmt.Errorf("condition on %q: unknown operator %q", c.Field, c.Operator)
	}
}

// numericField converts a present field value for an ordering operator. An
// absent value (nil) never satisfies one and is handled by the caller.
func numericField(c entities.Condition, actual any) (float64, error) {
	a, ok := toNumber(actual)
	if !ok {
		return 0, fmt.Errorf("condition on %q: field value %v is not numeric", c.Field, actual)
	}
	return a, nil
}

func betweenBounds(c entities.Condition) (float64, float64, error) {
	list, err := listOperand(c)
	if err != nil {
		return 0, 0, err
	}
	if len(list) != 2 {
		return 0, 0, fmt.Errorf("condition on %q: between needs exactly two values, got %d", c.Field, len(list))
	}
	lo, ok := toNumber(list[0])
	if !ok {
		return 0, 0, fmt.Errorf("condition on %q: between bound %v is not numeric", c.Field, list[0])
	}
	hi, ok := toNumber(list[1])
	if !ok {
		return 0, 0, fmt.Errorf("condition on %q: between bound %v is not numeric", c.Field, list[1])
	}
	return lo, hi, nil
}

// listOperand returns Values, falling back to a list given in Value.
func listOperand(c entities.Condition) ([]any, error) {
	if len(c.Values) > 0 {
		return c.Values, nil
	}
	if list, ok := c.Value.([]any); ok {
		return list, nil
	}
	return nil, fmt.Errorf("condition on %q: %s needs a list of values", c.Field, c.Operator)
}

func valuesEqual(a, b any) bool {
	if na, ok := toNumber(a); ok {
		nb, ok := toNumber(b)
		return ok && na == nb
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	}
	return false
}

// present is the exists predicate: the field holds a non-zero value.
func present(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	}
	if n, ok := toNumber(v); ok {
		return n != 0
	}
	return true
}
