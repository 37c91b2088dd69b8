package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
		if e.Error() != "ESTIMATE_NOT_FOUND: Estimate not found" {
			t.Fatalf("unexpected message %q", e.Error())
		}
		if e.Unwrap() != nil {
			t.Fatalf("expected no wrapped error")
		}
	})

	t.Run("wrapped error is kept out of the body", func(t *testing.T) {
		cause := errors.New("dynamodb timeout")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected errors.Is to reach the cause")
		}
		body := e.ToHTTPError()
		if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" || body.Details != nil {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("details do not mutate the original", func(t *testing.T) {
		base := NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate input", http.StatusUnprocessableEntity)
		withDetails := base.WithDetails([]string{"Customer ID is required"})
		if base.Details != nil {
			t.Fatalf("expected base without details")
		}
		if withDetails.ToHTTPError().Details == nil || withDetails.HTTPStatus != http.StatusUnprocessableEntity {
			t.Fatalf("unexpected error: %+v", withDetails)
		}
	})
}
