package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_StatusCodes(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("bad input", cause), ErrorTypeValidation, http.StatusBadRequest},
		{"decode", NewDecodeError("bad image", cause), ErrorTypeDecode, http.StatusUnprocessableEntity},
		{"oversized", NewOversizedError("too big", cause), ErrorTypeOversized, http.StatusRequestEntityTooLarge},
		{"source", NewSourceError("fetch failed", cause), ErrorTypeSource, http.StatusBadGateway},
		{"timeout", NewTimeoutError("too slow", cause), ErrorTypeTimeout, http.StatusGatewayTimeout},
		{"not found", NewNotFoundError("missing", cause), ErrorTypeNotFound, http.StatusNotFound},
		{"internal", NewInternalError("unexpected", cause), ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Type != tt.wantType {
				t.Errorf("Expected type %s, got %s", tt.wantType, tt.err.Type)
			}
			if tt.err.StatusCode != tt.wantCode {
				t.Errorf("Expected status %d, got %d", tt.wantCode, tt.err.StatusCode)
			}
			if !IsType(tt.err, tt.wantType) {
				t.Errorf("IsType(%s) returned false", tt.wantType)
			}
			if GetStatusCode(tt.err) != tt.wantCode {
				t.Errorf("GetStatusCode returned %d, want %d", GetStatusCode(tt.err), tt.wantCode)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	appErr := NewSourceError("fetch failed", cause)

	if !errors.Is(appErr, cause) {
		t.Error("Expected errors.Is to find the cause")
	}
	wrapped := fmt.Errorf("outer: %w", appErr)
	var target *AppError
	if !errors.As(wrapped, &target) {
		t.Fatal("Expected errors.As to find the AppError through wrapping")
	}
	if target.Type != ErrorTypeSource {
		t.Errorf("Expected source type, got %s", target.Type)
	}
}

func TestGetStatusCode_PlainError(t *testing.T) {
	if code := GetStatusCode(errors.New("plain")); code != http.StatusInternalServerError {
		t.Errorf("Expected 500 for plain errors, got %d", code)
	}
}
