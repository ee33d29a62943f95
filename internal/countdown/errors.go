package countdown

import (
	"errors"
	"fmt"
)

const (
	FieldHours   = "hours"
	FieldMinutes = "minutes"
	FieldSeconds = "seconds"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrStopped      = errors.New("countdown engine stopped")
)

// InputError reports which entry field could not be parsed.
type InputError struct {
	Field string
	Value string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s %q is not a non-negative integer", ErrInvalidInput, e.Field, e.Value)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

func AsInputError(err error) *InputError {
	var e *InputError
	if errors.As(err, &e) {
		return e
	}
	return nil
}
