package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// NameTooLong indicates the composite identifier exceeds the length ceiling
	NameTooLong ErrorCode = "NAME_TOO_LONG"
	// MissingCredential indicates no API key is configured for the summarization service
	MissingCredential ErrorCode = "MISSING_CREDENTIAL"
	// EmptyResponse indicates the summarization service returned no text
	EmptyResponse ErrorCode = "EMPTY_RESPONSE"
	// MalformedResult indicates the service response could not be parsed
	MalformedResult ErrorCode = "MALFORMED_RESULT"
	// NoDocuments indicates no documents could be loaded from the root directory
	NoDocuments ErrorCode = "NO_DOCUMENTS"
	// ConfigInvalid indicates the configuration failed validation
	ConfigInvalid ErrorCode = "CONFIG_INVALID"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// Error represents a docmcp error with a stable code, message, and optional
// structured details for diagnostics.
type Error struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	cause   error          // Underlying error (not exported to JSON)
}

// New creates a new Error
func New(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetails attaches structured diagnostics to the error
func (e *Error) WithDetails(details map[string]any) *Error {
	e.Details = details
	return e
}

// Detail returns a single detail value, or nil if absent
func (e *Error) Detail(key string) any {
	if e.Details == nil {
		return nil
	}
	return e.Details[key]
}

// CodeOf extracts the ErrorCode from err, walking the wrap chain.
// Returns InternalError for errors that are not *Error.
func CodeOf(err error) ErrorCode {
	var de *Error
	if stderrors.As(err, &de) {
		return de.Code
	}
	return InternalError
}

// IsCode reports whether err carries the given code
func IsCode(err error, code ErrorCode) bool {
	var de *Error
	if stderrors.As(err, &de) {
		return de.Code == code
	}
	return false
}
