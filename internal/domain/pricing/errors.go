package pricing

import (
	"fmt"
	"strings"

	"moving_pricing/internal/domain/entities"
)

// ValidationError reports input that failed validation. No price is
// computed when it is returned.
type ValidationError struct {
	Outcome entities.ValidationOutcome
}

func (e *ValidationError) Error() string {
	return "invalid estimate input: " + strings.Join(e.Outcome.Errors, "; ")
}

// ConfigurationError reports a catalog defect: an unknown field, operator,
// action type or category, or a malformed operand. It is never caused by
// user input and must not be skipped.
type ConfigurationError struct {
	RuleID string
	Stage  Stage
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.RuleID == "" {
		return fmt.Sprintf("catalog configuration error during %s: %s", e.Stage, e.Reason)
	}
	return fmt.Sprintf("catalog configuration error in rule %q during %s: %s", e.RuleID, e.Stage, e.Reason)
}

func configErrorf(ruleID string, stage Stage, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{RuleID: ruleID, Stage: stage, Reason: fmt.Sprintf(format, args...)}
}
