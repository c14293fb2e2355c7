package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestBackendErrorUnwrap(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusNotFound, ErrResourceNotFound},
		{http.StatusBadRequest, ErrValidationFailed},
		{http.StatusUnprocessableEntity, ErrValidationFailed},
		{http.StatusConflict, ErrIntegrityViolation},
		{http.StatusInternalServerError, ErrBackend},
	}

	for _, tt := range tests {
		err := fmt.Errorf("wrapped: %w", &BackendError{Status: tt.status})
		if !errors.Is(err, tt.want) {
			t.Errorf("status %d: errors.Is(%v) = false", tt.status, tt.want)
		}
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"backend message", &BackendError{Status: 400, Message: "Title already used"}, "Title already used"},
		{"backend without message", &BackendError{Status: 500}, "Operation failed"},
		{"custom", NewIntegrityError(MsgInstructorInUse), MsgInstructorInUse},
		{"plain", errors.New("dial tcp: refused"), "Operation failed"},
		{"wrapped network", fmt.Errorf("%w: timeout", ErrNetwork), "Operation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err, "Operation failed"); got != tt.want {
				t.Fatalf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInFlightError(t *testing.T) {
	err := NewInFlightError(7)
	if !Is(err, ErrConflict, ErrOperationInFlight) {
		t.Fatalf("expected in-flight error, got %v", err)
	}
	var custom *CustomError
	if !errors.As(err, &custom) || custom.Details["id"] != int64(7) {
		t.Fatalf("expected details with id 7, got %+v", custom)
	}
}
