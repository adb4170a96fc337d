package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a view-layer error
type ErrorType string

const (
	// ErrorTypeFetch indicates a network or collaborator API failure.
	// Surfaced as a user-visible banner; never retried automatically.
	ErrorTypeFetch ErrorType = "FETCH"

	// ErrorTypeEmptyResult indicates a valid response with zero elements,
	// e.g. no path between two users. Informational, not a failure.
	ErrorTypeEmptyResult ErrorType = "EMPTY_RESULT"

	// ErrorTypeAssembly indicates a malformed payload: an unknown entity
	// kind or an edge referencing an undeclared node.
	ErrorTypeAssembly ErrorType = "ASSEMBLY"

	// ErrorTypeInvalidKind indicates an entity kind outside the two
	// recognized values reached the key codec.
	ErrorTypeInvalidKind ErrorType = "INVALID_KIND"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType              `json:"type"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// NewFetchError creates a fetch error for a failed collaborator call
func NewFetchError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeFetch,
		Message: message,
		Cause:   cause,
	}
}

// NewEmptyResultError creates an empty-result error
func NewEmptyResultError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeEmptyResult,
		Message: message,
	}
}

// NewAssemblyError creates an assembly error for a malformed payload
func NewAssemblyError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeAssembly,
		Message: message,
	}
}

// NewInvalidKindError creates an invalid-kind error
func NewInvalidKindError(kind string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidKind,
		Message: fmt.Sprintf("unrecognized entity kind %q", kind),
	}
}

// typeOf extracts the ErrorType from any error in the chain
func typeOf(err error) (ErrorType, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type, true
	}
	return "", false
}

// IsFetch reports whether err is a fetch error
func IsFetch(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrorTypeFetch
}

// IsEmptyResult reports whether err is an empty-result error
func IsEmptyResult(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrorTypeEmptyResult
}

// IsAssembly reports whether err is an assembly error, including the
// invalid-kind subcategory
func IsAssembly(err error) bool {
	t, ok := typeOf(err)
	return ok && (t == ErrorTypeAssembly || t == ErrorTypeInvalidKind)
}

// IsInvalidKind reports whether err is an invalid-kind error
func IsInvalidKind(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrorTypeInvalidKind
}
