package domain

import (
	"errors"
	"fmt"
	"testing"
)

// codedError mimics package-level error types that carry their own code.
type codedError struct {
	code    string
	message string
}

func (e *codedError) Error() string        { return e.message }
func (e *codedError) ErrorCode() string    { return e.code }
func (e *codedError) ErrorMessage() string { return e.message }

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, ""},
		{"domain error", Invalid("op", "bad input"), EINVALID},
		{"wrapped domain error", fmt.Errorf("outer: %w", NotFound("op", "thing", "1")), ENOTFOUND},
		{"coded error", &codedError{code: "provider", message: "upstream broke"}, "provider"},
		{"untyped error", errors.New("plain"), EINTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorCode(tt.err); got != tt.expected {
				t.Errorf("ErrorCode() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	if got := ErrorMessage(Invalid("op", "price must be positive")); got != "price must be positive" {
		t.Errorf("ErrorMessage = %q", got)
	}

	// Internal errors never leak details.
	generic := "An internal error occurred. Please try again later."
	if got := ErrorMessage(Internal(errors.New("db down"), "op", "db at 10.0.0.1 unreachable")); got != generic {
		t.Errorf("internal ErrorMessage = %q, want generic", got)
	}
	if got := ErrorMessage(errors.New("plain")); got != generic {
		t.Errorf("untyped ErrorMessage = %q, want generic", got)
	}

	if got := ErrorMessage(&codedError{code: "configuration", message: "missing token"}); got != "missing token" {
		t.Errorf("coded ErrorMessage = %q", got)
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, EINVALID, "op", "msg") != nil {
		t.Error("wrapping nil should return nil")
	}

	cause := errors.New("decode failed")
	err := WrapError(cause, EINVALID, "webhook.decode", "invalid payload")

	if !errors.Is(err, cause) {
		t.Error("wrapped error should preserve cause")
	}
	if ErrorCode(err) != EINVALID {
		t.Errorf("code = %q, want %q", ErrorCode(err), EINVALID)
	}
	if ErrorOp(err) != "webhook.decode" {
		t.Errorf("op = %q", ErrorOp(err))
	}
}

func TestIsCode(t *testing.T) {
	err := Errorf(ECONFLICT, "order.confirm", "already recorded")
	if !IsCode(err, ECONFLICT) {
		t.Error("IsCode should match")
	}
	if IsCode(err, EINVALID) {
		t.Error("IsCode should not match a different code")
	}
}
