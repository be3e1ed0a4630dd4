package common

import "fmt"

// MissingFieldError is returned by the Validate methods of response types
// when a required member is absent from the decoded body.
type MissingFieldError struct {
	Type  string
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("invalid %s: missing required field %q", e.Type, e.Field)
}

// InvalidParameter marks this error as errdefs.ErrInvalidArgument.
func (e MissingFieldError) InvalidParameter() {}
