package props

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownProperty indicates an id with no definition in the table.
	ErrUnknownProperty = errors.New("props: unknown property")

	// ErrValueOutOfRange indicates a value or param that does not fit its field.
	ErrValueOutOfRange = errors.New("props: value out of range")

	// ErrInvalidDefinition indicates a malformed definition table entry.
	ErrInvalidDefinition = errors.New("props: invalid definition")
)

// UnknownPropertyError reports the offending id.
type UnknownPropertyError struct {
	ID uint16
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("props: unknown property %d", e.ID)
}

// Is matches ErrUnknownProperty.
func (e *UnknownPropertyError) Is(target error) bool {
	return target == ErrUnknownProperty
}

// RangeError reports a value or param outside the range its definition allows.
type RangeError struct {
	ID    uint16
	Field string // "value" or "param"
	Value int64
	Min   int64
	Max   int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("props: property %d %s %d outside [%d, %d]", e.ID, e.Field, e.Value, e.Min, e.Max)
}

// Is matches ErrValueOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrValueOutOfRange
}
