package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Catalog errors
var (
	ErrCollegeNotFound = errors.New("college not found")
	ErrCourseNotFound  = errors.New("course not found")
	ErrCareerNotFound  = errors.New("career path not found")
)

// Narrator errors. These never surface through the HTTP contract: the
// schedule service degrades to heuristic narration instead.
var (
	ErrServiceUnavailable = errors.New("generation service unavailable")
	ErrInvalidResponse    = errors.New("generation service returned an unusable response")
)

// NewValidationError creates a new custom error for failed input validation
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
