package validate

import "strings"

// FieldError is a single caller-correctable problem with one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the full list of problems found in one validation pass.
// A call either succeeds or returns every applicable error at once so
// the caller can report them together.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the field names in error, in reported order, or nil
// when there are none.
func (e Errors) Fields() []string {
	if len(e) == 0 {
		return nil
	}
	fields := make([]string, 0, len(e))
	for _, fe := range e {
		fields = append(fields, fe.Field)
	}
	return fields
}
