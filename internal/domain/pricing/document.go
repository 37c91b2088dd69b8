package pricing

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"moving_pricing/internal/domain/entities"
)

// document is the JSON view of an input (or of one Location) that rule
// conditions and per-unit actions address with dotted paths.
type document map[string]any

// Derived fields available next to the json fields.
const (
	fieldCrewHours = "crewHours"
	fieldLeg       = "leg"
)

var errUnknownField = errors.New("unknown field")

func newInputDocument(in entities.EstimateInput) (document, error) {
	doc, err := toDocument(in)
	if err != nil {
		return nil, err
	}
	doc[fieldCrewHours] = float64(in.CrewSize) * in.EstimatedDuration
	return doc, nil
}

func newLocationDocument(loc entities.Location, leg entities.Leg) (document, error) {
	doc, err := toDocument(loc)
	if err != nil {
		return nil, err
	}
	doc[fieldLeg] = string(leg)
	return doc, nil
}

func toDocument(v any) (document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// lookup resolves a dotted path. Paths that do not exist in the input schema
// return errUnknownField; a nil value is a known but absent field (e.g. an
// index past the end of rooms).
func (d document) lookup(path string) (any, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errUnknownField
	}
	var cur any = map[string]any(d)
	for _, seg := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil, errUnknownField
			}
			cur = v
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 {
				return nil, errUnknownField
			}
			if idx >= len(node) {
				return nil, nil
			}
			cur = node[idx]
		case nil:
			return nil, nil
		default:
			return nil, errUnknownField
		}
	}
	return cur, nil
}

// schemaLookup resolves path against an exemplar document whose arrays hold
// one element. Any non-negative index descends into that element, so a path
// is judged by the input schema and not by how many rooms an input lists.
func (d document) schemaLookup(path string) (any, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errUnknownField
	}
	var cur any = map[string]any(d)
	for _, seg := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil, errUnknownField
			}
			cur = v
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || len(node) == 0 {
				return nil, errUnknownField
			}
			cur = node[0]
		default:
			return nil, errUnknownField
		}
	}
	return cur, nil
}

// toNumber accepts every numeric representation a catalog decoder may
// produce (json float64, yaml int).
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func unitCount(v any) (float64, bool) {
	if b, ok := v.(bool); ok {
		if b {
			return 1, true
		}
		return 0, true
	}
	if v == nil {
		return 0, true
	}
	return toNumber(v)
}
