package core

import (
	"errors"
	"fmt"
)

// SuiteError represents a structured error with category and details
type SuiteError struct {
	Category ErrorCategory
	Code     string                 // Machine-readable code: element_not_found, server_unreachable, etc.
	Message  string                 // Human-readable message
	Details  map[string]interface{} // Additional context
	Cause    error                  // Underlying error
}

// Error implements the error interface
func (e *SuiteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *SuiteError) Unwrap() error {
	return e.Cause
}

// Is matches errors by category and code so that copies produced by
// WithCause/WithDetails still compare equal to the predefined errors.
func (e *SuiteError) Is(target error) bool {
	var t *SuiteError
	if !errors.As(target, &t) {
		return false
	}
	return e.Category == t.Category && e.Code == t.Code
}

// WithCause returns a copy of the error with the given cause
func (e *SuiteError) WithCause(cause error) *SuiteError {
	return &SuiteError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Details:  e.Details,
		Cause:    cause,
	}
}

// WithMessage returns a copy of the error with a custom message
func (e *SuiteError) WithMessage(msg string) *SuiteError {
	return &SuiteError{
		Category: e.Category,
		Code:     e.Code,
		Message:  msg,
		Details:  e.Details,
		Cause:    e.Cause,
	}
}

// WithDetails returns a copy of the error with additional details
func (e *SuiteError) WithDetails(details map[string]interface{}) *SuiteError {
	merged := make(map[string]interface{})
	for k, v := range e.Details {
		merged[k] = v
	}
	for k, v := range details {
		merged[k] = v
	}
	return &SuiteError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Details:  merged,
		Cause:    e.Cause,
	}
}

// Predefined errors
var (
	// Element errors
	ErrElementNotFound = &SuiteError{
		Category: ErrCategoryElement,
		Code:     "element_not_found",
		Message:  "element not found within wait bound",
	}

	// Interaction errors
	ErrNotInteractable = &SuiteError{
		Category: ErrCategoryInteraction,
		Code:     "element_not_interactable",
		Message:  "element is present but not interactable",
	}

	// Connection errors
	ErrServerUnreachable = &SuiteError{
		Category: ErrCategoryConnection,
		Code:     "server_unreachable",
		Message:  "could not connect to automation server",
	}
	ErrBackendUnreachable = &SuiteError{
		Category: ErrCategoryConnection,
		Code:     "backend_unreachable",
		Message:  "could not reach backend API",
	}

	// Config errors
	ErrInvalidCapabilities = &SuiteError{
		Category: ErrCategoryConfig,
		Code:     "invalid_capabilities",
		Message:  "invalid capability configuration",
	}
	ErrSessionRejected = &SuiteError{
		Category: ErrCategoryConfig,
		Code:     "session_rejected",
		Message:  "automation server rejected the session request",
	}
	ErrUnknownTab = &SuiteError{
		Category: ErrCategoryConfig,
		Code:     "unknown_tab",
		Message:  "unknown navigation tab",
	}

	// Response errors
	ErrUnexpectedResponse = &SuiteError{
		Category: ErrCategoryConnection,
		Code:     "unexpected_response",
		Message:  "backend returned an unexpected response shape",
	}
)

// NewSuiteError creates a new SuiteError with the given parameters
func NewSuiteError(category ErrorCategory, code, message string) *SuiteError {
	return &SuiteError{
		Category: category,
		Code:     code,
		Message:  message,
	}
}
