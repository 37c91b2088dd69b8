package pricing

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"moving_pricing/internal/domain/entities"
)

// CanonicalJSON serializes v with object keys sorted, no insignificant
// whitespace, no HTML escaping and shortest round-trip number formatting.
func CanonicalJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(generic); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Hash returns the hex SHA-256 digest of the canonical serialization of v.
func Hash(v any) (string, error) {
	b, err := CanonicalJSON(v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// HashInput hashes the input exactly as received, before normalization.
func HashInput(in entities.EstimateInput) (string, error) {
	return Hash(in)
}

type resultHashPayload struct {
	FinalPrice   float64                `json:"finalPrice"`
	Breakdown    entities.Breakdown     `json:"breakdown"`
	AppliedRules []entities.AppliedRule `json:"appliedRules"`
	RulesVersion string                 `json:"rulesVersion"`
}

// HashResult hashes the price-bearing part of a calculation. Timestamps,
// ids and actor are excluded.
func HashResult(c entities.Calculations, rulesVersion string) (string, error) {
	return Hash(resultHashPayload{
		FinalPrice:   c.FinalPrice,
		Breakdown:    c.Breakdown,
		AppliedRules: c.AppliedRules,
		RulesVersion: rulesVersion,
	})
}
