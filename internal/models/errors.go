package models

import "fmt"

// FieldError reports a server record that arrived without one of its
// required fields. It marks a malformed record rather than a failed
// request, so it is never retried.
type FieldError struct {
	Entity string
	Field  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s record missing required field %q", e.Entity, e.Field)
}
