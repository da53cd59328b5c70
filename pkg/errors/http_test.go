package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "ai-planning-service/pkg/errors"
)

func TestNewHTTPError(t *testing.T) {
	err := pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "no valid tasks")
	if err.Error() != "no valid tasks" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if err.StatusCode() != http.StatusUnprocessableEntity {
		t.Errorf("unexpected code %d", err.StatusCode())
	}

	if got := pkgErrors.NewHTTPError(0, "boom").StatusCode(); got != http.StatusInternalServerError {
		t.Errorf("zero code should default to 500, got %d", got)
	}
}

func TestHTTPErrorAs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", pkgErrors.ErrTooManyRequests)

	var herr *pkgErrors.HTTPError
	if !errors.As(wrapped, &herr) {
		t.Fatal("expected errors.As to find HTTPError")
	}
	if herr.Code != http.StatusTooManyRequests {
		t.Errorf("unexpected code %d", herr.Code)
	}
}
