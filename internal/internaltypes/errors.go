package internaltypes

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an id is absent from the catalog.
var ErrNotFound = errors.New("not found")

// ValidationError is a user-facing input problem. It is surfaced by the screen
// that detected it and never propagated further.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func Invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// AsValidation reports whether err carries a ValidationError and returns it.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
