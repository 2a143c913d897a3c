package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestWrap(t *testing.T) {
	internal := fmt.Errorf("boom")
	err := Wrap(ErrInternalServer, internal)

	if err.Code != ErrInternalServer.Code {
		t.Errorf("expected code %s, got %s", ErrInternalServer.Code, err.Code)
	}
	if !errors.Is(err, internal) {
		t.Error("expected wrapped error to unwrap to the internal error")
	}
	if !errors.Is(err, ErrInternalServer) {
		t.Error("expected wrapped error to match its sentinel")
	}
}

func TestWithMessage(t *testing.T) {
	err := WithMessage(ErrInvalidInput, "pin must be numeric")

	if err.Message != "pin must be numeric" {
		t.Errorf("expected custom message, got %q", err.Message)
	}
	if err.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", err.StatusCode)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("expected custom message error to match its sentinel")
	}
	if errors.Is(err, ErrInvalidAmount) {
		t.Error("did not expect a match against a different code")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"authentication", ErrAuthenticationFailed, KindAuthentication},
		{"validation", ErrSelfTransfer, KindValidation},
		{"loan", ErrLoanIneligible, KindLoanIneligible},
		{"not_found", ErrAccountNotFound, KindNotFound},
		{"wrapped", fmt.Errorf("transfer: %w", ErrInsufficientBalance), KindValidation},
		{"plain", fmt.Errorf("plain"), KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("expected kind %s, got %s", tt.want, got)
			}
		})
	}
}
