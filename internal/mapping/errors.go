package mapping

import "fmt"

// InvalidInputError is returned when the mapper input is not an object
type InvalidInputError struct {
	Kind  string // what was received instead, e.g. "null", "array", "invalid JSON"
	Cause error
}

func (e *InvalidInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid input: expected an object, got %s: %v", e.Kind, e.Cause)
	}
	return fmt.Sprintf("invalid input: expected an object, got %s", e.Kind)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Cause
}
