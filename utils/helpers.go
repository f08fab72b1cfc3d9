package utils

import (
	"encoding/json"
	"fmt"

	"github.com/ragforge/flowgraph/constants"
)

// ErrorWrapper provides standardized error handling patterns
type ErrorWrapper struct {
	context string
}

// NewErrorWrapper creates a new error wrapper with context
func NewErrorWrapper(context string) *ErrorWrapper {
	return &ErrorWrapper{context: context}
}

// Wrapf wraps an error with context and formatting
func (e *ErrorWrapper) Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return Errorf("%s: %s: %w", e.context, message, err)
}

// Failf creates a new error with context and formatting
func (e *ErrorWrapper) Failf(format string, args ...any) error {
	message := fmt.Sprintf(format, args...)
	return Errorf("%s: %s", e.context, message)
}

// MarshalJSONIndent marshals data to pretty JSON.
func MarshalJSONIndent(v any, indent string) ([]byte, error) {
	if indent == "" {
		indent = constants.JSONIndent
	}
	return json.MarshalIndent(v, "", indent)
}

// MustMarshalJSON marshals to JSON and panics on error (for testing)
func MustMarshalJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}

// ValidateRequired checks if required fields are present
func ValidateRequired(fieldName string, value any) error {
	if value == nil {
		return Errorf("required field '%s' is missing", fieldName)
	}

	switch v := value.(type) {
	case string:
		if v == "" {
			return Errorf("required field '%s' cannot be empty", fieldName)
		}
	case []any:
		if len(v) == 0 {
			return Errorf("required field '%s' cannot be empty", fieldName)
		}
	case map[string]any:
		if len(v) == 0 {
			return Errorf("required field '%s' cannot be empty", fieldName)
		}
	}

	return nil
}

// ValidateOneOf checks if value is one of the allowed values
func ValidateOneOf(fieldName string, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return Errorf("field '%s' must be one of %v, got '%s'", fieldName, allowed, value)
}
