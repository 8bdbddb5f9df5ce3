package nutrition

import (
	"fmt"
	"strings"
)

// ValidationError reports a malformed or out-of-range input value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidf(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError reports food or activity keys that could not be resolved
// against the store. Keys always contains every unresolved key, not just the
// first one encountered.
type NotFoundError struct {
	Kind string // "food" or "activity"
	Keys []string
}

func (e *NotFoundError) Error() string {
	if len(e.Keys) == 1 {
		return fmt.Sprintf("%s not found: %s", e.Kind, e.Keys[0])
	}
	return fmt.Sprintf("%ss not found: %s", e.Kind, strings.Join(e.Keys, ", "))
}

// DataIncompleteError reports a person profile missing fields a calculation
// requires.
type DataIncompleteError struct {
	Missing []string
}

func (e *DataIncompleteError) Error() string {
	return fmt.Sprintf("incomplete profile, missing: %s", strings.Join(e.Missing, ", "))
}
