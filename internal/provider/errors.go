package provider

import "fmt"

// Error codes mirror domain error codes to avoid circular imports. The
// handler layer maps these to HTTP status codes.
const (
	codeInvalid = "invalid"
)

// ProviderError represents a provider-selection error with a code and message.
// It implements the domain error interface pattern for consistent HTTP status
// mapping.
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// ErrorCode returns the error code for HTTP status mapping.
func (e *ProviderError) ErrorCode() string {
	return e.Code
}

// ErrorMessage returns the user-facing message.
func (e *ProviderError) ErrorMessage() string {
	return e.Message
}

func newProviderError(code, message string) *ProviderError {
	return &ProviderError{Code: code, Message: message}
}

var (
	// ErrNilValidator is returned when a nil validator is passed to NewDefaultFactory.
	ErrNilValidator = newProviderError(codeInvalid, "validator cannot be nil")

	// ErrNilConfig is returned when a nil config is passed to factory methods.
	ErrNilConfig = newProviderError(codeInvalid, "config cannot be nil")
)

// ErrValidationFailed creates an error for config validation failures.
func ErrValidationFailed(name ProviderName, errors []string) error {
	return &ProviderError{
		Code:    codeInvalid,
		Message: fmt.Sprintf("%s config validation failed: %v", name, errors),
	}
}

// ErrUnknownProvider creates an error for unknown provider names.
func ErrUnknownProvider(name ProviderName) error {
	return &ProviderError{
		Code:    codeInvalid,
		Message: fmt.Sprintf("unknown tax provider: %s", name),
	}
}
