package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"moving_pricing/internal/domain/entities"
)

const moveJSON = `{
	"customerId": "cust-1",
	"service": "local",
	"moveDate": "2026-11-04T09:00:00Z",
	"pickup": {"address": "1 Main St"},
	"delivery": {"address": "9 Elm St"},
	"totalWeight": 3000,
	"totalVolume": 400,
	"distance": 10,
	"estimatedDuration": 4,
	"crewSize": 2
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	t.Run("prices with the embedded catalog", func(t *testing.T) {
		var out, errOut bytes.Buffer
		if err := run([]string{"-input", writeFile(t, "move.json", moveJSON)}, &out, &errOut); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var res entities.EstimateResult
		if err := json.Unmarshal(out.Bytes(), &res); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Calculations.FinalPrice != 545 || res.Metadata.CalculatedBy != "cli" || res.Metadata.ResultHash == "" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("same input gives the same result hash", func(t *testing.T) {
		path := writeFile(t, "move.json", moveJSON)
		var a, b bytes.Buffer
		if err := run([]string{"-input", path}, &a, &bytes.Buffer{}); err != nil {
			t.Fatal(err)
		}
		if err := run([]string{"-input", path}, &b, &bytes.Buffer{}); err != nil {
			t.Fatal(err)
		}
		var ra, rb entities.EstimateResult
		_ = json.Unmarshal(a.Bytes(), &ra)
		_ = json.Unmarshal(b.Bytes(), &rb)
		if ra.Metadata.ResultHash != rb.Metadata.ResultHash || ra.Metadata.InputHash != rb.Metadata.InputHash {
			t.Fatalf("expected identical hashes")
		}
	})

	t.Run("custom catalog", func(t *testing.T) {
		cat := writeFile(t, "rules.yaml", "rulesVersion: flat-1\npricingRules:\n  - id: flat\n    active: true\n    actions:\n      - type: add_fixed\n        amount: 999\n        target: overhead\n")
		var out bytes.Buffer
		if err := run([]string{"-input", writeFile(t, "move.json", moveJSON), "-catalog", cat, "-actor", "ops"}, &out, &bytes.Buffer{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var res entities.EstimateResult
		_ = json.Unmarshal(out.Bytes(), &res)
		if res.Calculations.FinalPrice != 999 || res.Metadata.RulesVersion != "flat-1" {
			t.Fatalf("unexpected result: %+v", res.Calculations)
		}
	})

	t.Run("validate only", func(t *testing.T) {
		var out bytes.Buffer
		bad := writeFile(t, "move.json", `{"service":"local","distance":120}`)
		if err := run([]string{"-validate", "-input", bad}, &out, &bytes.Buffer{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var outcome entities.ValidationOutcome
		_ = json.Unmarshal(out.Bytes(), &outcome)
		if outcome.Valid || len(outcome.Errors) == 0 {
			t.Fatalf("expected invalid outcome, got %+v", outcome)
		}
	})

	t.Run("rejected input", func(t *testing.T) {
		bad := writeFile(t, "move.json", `{"service":"local","distance":120}`)
		if err := run([]string{"-input", bad}, &bytes.Buffer{}, &bytes.Buffer{}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing input flag", func(t *testing.T) {
		if err := run(nil, &bytes.Buffer{}, &bytes.Buffer{}); err == nil {
			t.Fatalf("expected error")
		}
	})
}
