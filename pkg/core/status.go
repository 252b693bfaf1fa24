package core

// CaseStatus represents the execution status of a test case
type CaseStatus int

const (
	StatusPending CaseStatus = iota // Not yet started
	StatusRunning                   // Currently executing
	StatusPassed                    // Completed successfully
	StatusFailed                    // Assertion or infrastructure failure
	StatusSkipped                   // Excluded by marker selection or cancellation
)

// String returns the string representation of CaseStatus
func (s CaseStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// IsTerminal returns true if the status is a final state
func (s CaseStatus) IsTerminal() bool {
	switch s {
	case StatusPassed, StatusFailed, StatusSkipped:
		return true
	default:
		return false
	}
}

// ErrorCategory classifies the type of error for better debugging and reporting
type ErrorCategory int

const (
	ErrCategoryNone        ErrorCategory = iota // No error
	ErrCategoryElement                          // Element not found within the wait bound
	ErrCategoryInteraction                      // Element present but not actionable
	ErrCategoryConnection                       // Server/backend unreachable
	ErrCategoryConfig                           // Invalid capabilities, unknown navigation target
)

// String returns the string representation of ErrorCategory
func (c ErrorCategory) String() string {
	switch c {
	case ErrCategoryNone:
		return "none"
	case ErrCategoryElement:
		return "element"
	case ErrCategoryInteraction:
		return "interaction"
	case ErrCategoryConnection:
		return "connection"
	case ErrCategoryConfig:
		return "config"
	default:
		return "unknown"
	}
}
