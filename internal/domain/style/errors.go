package style

import (
	"fmt"
	"strings"
)

// Error codes for categorization.
const (
	ErrCodeInputNotFound  = "INPUT_NOT_FOUND"
	ErrCodeTargetDump     = "TARGET_DUMP_FAILED"
	ErrCodeNoPresets      = "NO_PRESETS_LOADED"
	ErrCodeToolNotFound   = "TOOL_NOT_FOUND"
	ErrCodeDumpParse      = "DUMP_PARSE_FAILED"
	ErrCodePresetRejected = "PRESET_REJECTED"
)

// UserError represents a user-facing error with an actionable suggestion.
type UserError struct {
	Code       string // Error code for categorization (e.g., "INPUT_NOT_FOUND")
	Message    string // User-friendly error message
	Context    string // File path or other location context
	Suggestion string // Actionable suggestion to fix the error
	Underlying error  // Wrapped error for error chain
}

// Error returns the formatted error message.
func (e *UserError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Context != "" {
		fmt.Fprintf(&b, " (at %s)", e.Context)
	}
	return b.String()
}

// Unwrap returns the underlying error for error chain support.
func (e *UserError) Unwrap() error {
	return e.Underlying
}

// Is supports errors.Is() for comparing error codes.
func (e *UserError) Is(target error) bool {
	if t, ok := target.(*UserError); ok {
		return e.Code == t.Code
	}
	return false
}
