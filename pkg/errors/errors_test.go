package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	plain := NotFound("room")
	if plain.Error() != "NOT_FOUND: room not found" {
		t.Errorf("Error() = %q", plain.Error())
	}

	cause := errors.New("connection refused")
	wrapped := Internal("database query failed", cause)
	want := "INTERNAL_ERROR: database query failed (caused by: connection refused)"
	if wrapped.Error() != want {
		t.Errorf("Error() = %q, want %q", wrapped.Error(), want)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, CodeInternal, "wrapped", http.StatusInternalServerError)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestConstructorStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"not found", NotFound("booking"), http.StatusNotFound},
		{"validation", Validation("bad fields", nil), http.StatusUnprocessableEntity},
		{"invalid input", InvalidInput("bad date"), http.StatusBadRequest},
		{"unauthorized", Unauthorized("no"), http.StatusUnauthorized},
		{"forbidden", Forbidden("no"), http.StatusForbidden},
		{"conflict", Conflict("slot already booked"), http.StatusConflict},
		{"internal", Internal("oops", nil), http.StatusInternalServerError},
		{"timeout", Timeout("slow"), http.StatusGatewayTimeout},
		{"unavailable", Unavailable("rooms service"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.StatusCode() != tt.want {
				t.Errorf("StatusCode() = %d, want %d", tt.err.StatusCode(), tt.want)
			}
		})
	}
}

func TestNotFoundWithID_Details(t *testing.T) {
	err := NotFoundWithID("room", "507f1f77bcf86cd799439011")
	if err.Details["id"] != "507f1f77bcf86cd799439011" {
		t.Errorf("Details[id] = %v", err.Details["id"])
	}
	if err.Details["resource"] != "room" {
		t.Errorf("Details[resource] = %v", err.Details["resource"])
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(Conflict("x")) {
		t.Error("IsAppError should be true for AppError")
	}
	if IsAppError(errors.New("plain")) {
		t.Error("IsAppError should be false for plain errors")
	}
}

func TestAsAppError_WrapsUnknown(t *testing.T) {
	plain := errors.New("plain")
	appErr := AsAppError(plain)

	if appErr.Code != CodeInternal {
		t.Errorf("Code = %q, want %q", appErr.Code, CodeInternal)
	}
	if !errors.Is(appErr, plain) {
		t.Error("wrapped error should unwrap to the original")
	}
}
