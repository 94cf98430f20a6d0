package taxes

import "fmt"

// ============================================================================
// TAX ERROR CODES
// ============================================================================
// The handler layer maps these to HTTP status codes. The first three are
// the error kinds of the translation layer; anything else bubbling out of
// this package is a programming error.

const (
	// CodeMissingField: a required field (customer identity, transaction
	// reference for refunds) cannot be resolved from the payload.
	CodeMissingField = "missing_required_field"

	// CodeConfiguration: a precondition on merchant configuration is
	// violated (e.g. refund attempted without autocommit enabled).
	CodeConfiguration = "configuration"

	// CodeProvider: any failure surfaced by the tax-provider call;
	// propagated unchanged, never retried or transformed here.
	CodeProvider = "provider"

	// CodeNotImplemented: the selected backend does not support the
	// requested operation.
	CodeNotImplemented = "not_implemented"
)

// ============================================================================
// TAX ERROR TYPE
// ============================================================================

// Error represents a tax-specific error with a code and message.
// It implements the domain.Error interface pattern for consistent HTTP
// status mapping and wraps the underlying cause when there is one.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap supports errors.Is and errors.As on the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorCode returns the error code for HTTP status mapping.
func (e *Error) ErrorCode() string {
	return e.Code
}

// ErrorMessage returns the caller-facing message.
func (e *Error) ErrorMessage() string {
	return e.Message
}

// ============================================================================
// CONSTRUCTORS
// ============================================================================

// NewMissingFieldError reports a required field that could not be
// resolved from the payload. Raised before any provider call so a
// malformed request never reaches the provider.
func NewMissingFieldError(field string) *Error {
	return &Error{
		Code:    CodeMissingField,
		Message: fmt.Sprintf("Required field could not be resolved from the payload: %s", field),
	}
}

// NewConfigurationError reports a violated merchant-configuration
// precondition.
func NewConfigurationError(message string) *Error {
	return &Error{Code: CodeConfiguration, Message: message}
}

// NewProviderError wraps a failure surfaced by the tax provider.
// Recovery policy (retry vs. fail) is a platform-level concern, so the
// cause is kept intact for the caller.
func NewProviderError(err error, message string) *Error {
	return &Error{Code: CodeProvider, Message: message, Err: err}
}

// NewNotImplementedError reports an operation the selected backend does
// not support.
func NewNotImplementedError(op string) *Error {
	return &Error{
		Code:    CodeNotImplemented,
		Message: fmt.Sprintf("Operation not supported by this tax provider: %s", op),
	}
}

// IsMissingFieldError returns true if err is a missing-required-field error.
func IsMissingFieldError(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Code == CodeMissingField
}

// IsConfigurationError returns true if err is a configuration error.
func IsConfigurationError(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Code == CodeConfiguration
}

// IsProviderError returns true if err was surfaced by a provider call.
func IsProviderError(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Code == CodeProvider
}
