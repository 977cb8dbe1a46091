// File: internal/services/analysis/errors.go
package analysis

import "fmt"

// ValidationError reports missing or malformed request input. It is
// the only error type handlers surface as a client error status;
// everything else degrades to a fallback result.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}
