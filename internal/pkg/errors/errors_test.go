package errors

import (
	"fmt"
	"testing"
)

func TestNewAPIErrorSetsStatusCode(t *testing.T) {
	err := BadRequest("bad input")
	if err.StatusCode != 400 {
		t.Fatalf("expected status 400, got %d", err.StatusCode)
	}
	if err.Code != ErrCodeBadRequest {
		t.Fatalf("expected code %q, got %q", ErrCodeBadRequest, err.Code)
	}
}

func TestAPIErrorIncludesDetailsInMessage(t *testing.T) {
	err := ValidationError("invalid config", "page size must be positive")
	want := "VALIDATION_ERROR: invalid config (page size must be positive)"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestGetAPIErrorWrapsPlainErrors(t *testing.T) {
	wrapped := GetAPIError(fmt.Errorf("boom"))
	if wrapped.Code != ErrCodeInternal {
		t.Fatalf("expected an internal error code, got %q", wrapped.Code)
	}
}

func TestIsAPIError(t *testing.T) {
	if !IsAPIError(NotFound("missing")) {
		t.Fatal("expected NotFound to be an APIError")
	}
	if IsAPIError(fmt.Errorf("plain")) {
		t.Fatal("expected a plain error not to be an APIError")
	}
}
