package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// Usage indicates the command line was invalid
	Usage ErrorCode = "USAGE"
	// FileReadFailed indicates an input file could not be read
	FileReadFailed ErrorCode = "FILE_READ_FAILED"
	// FileWriteFailed indicates a rewritten file could not be saved
	FileWriteFailed ErrorCode = "FILE_WRITE_FAILED"
	// ConfigInvalid indicates the configuration could not be loaded or validated
	ConfigInvalid ErrorCode = "CONFIG_INVALID"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// FixActionType represents the type of fix action
type FixActionType string

const (
	// RunCommand suggests running a command
	RunCommand FixActionType = "run-command"
	// CheckPath suggests inspecting a file or directory
	CheckPath FixActionType = "check-path"
)

// FixAction represents a suggested fix for an error
type FixAction struct {
	Type        FixActionType `json:"type"`
	Command     string        `json:"command,omitempty"`
	Description string        `json:"description,omitempty"`
}

// SortError represents an error with code, message, and suggestions
type SortError struct {
	Code           ErrorCode   `json:"code"`
	Message        string      `json:"message"`
	Details        interface{} `json:"details,omitempty"`
	SuggestedFixes []FixAction `json:"suggestedFixes,omitempty"`
	cause          error       // Underlying error (not exported to JSON)
}

// NewSortError creates a new SortError with the default fixes for its code
func NewSortError(code ErrorCode, message string, cause error) *SortError {
	return &SortError{
		Code:           code,
		Message:        message,
		cause:          cause,
		SuggestedFixes: GetSuggestedFixes(code),
	}
}

// Error implements the error interface
func (e *SortError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *SortError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *SortError) WithDetails(details interface{}) *SortError {
	e.Details = details
	return e
}

// CodeOf returns the code of the first SortError in err's chain,
// or InternalError when there is none.
func CodeOf(err error) ErrorCode {
	var se *SortError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return InternalError
}

// ErrorActions maps error codes to suggested fix actions
var ErrorActions = map[ErrorCode][]FixAction{
	Usage: {
		{
			Type:        RunCommand,
			Command:     "sortsources --help",
			Description: "Show usage",
		},
	},
	FileReadFailed: {
		{
			Type:        CheckPath,
			Description: "Check that the file exists and is readable",
		},
	},
	FileWriteFailed: {
		{
			Type:        CheckPath,
			Description: "Check that the file is writable; the original content is unchanged",
		},
	},
	ConfigInvalid: {
		{
			Type:        CheckPath,
			Description: "Check .sortsources.json and SORTSOURCES_* environment variables",
		},
	},
}

// GetSuggestedFixes returns suggested fixes for an error code
func GetSuggestedFixes(code ErrorCode) []FixAction {
	if fixes, ok := ErrorActions[code]; ok {
		return fixes
	}
	return nil
}
