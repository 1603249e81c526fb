package models

import "fmt"

const (
	FieldAge    = "age"
	FieldHeight = "height"
	FieldWeight = "weight"
)

// ValidationResult is the verdict on one set of raw measurements.
// Message is empty when IsValid is true.
type ValidationResult struct {
	IsValid bool   `json:"is_valid"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Err returns nil for a valid result, otherwise an *InvalidInputError.
func (r ValidationResult) Err() error {
	if r.IsValid {
		return nil
	}
	return &InvalidInputError{Field: r.Field, Message: r.Message}
}

// InvalidInputError is the only error the calculator produces. The user
// recovers by correcting Field and retrying.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
