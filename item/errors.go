package item

import (
	"errors"

	"github.com/joshuapare/d2ikit/internal/format"
)

var (
	// ErrBadSignature indicates the record does not start with "JM".
	ErrBadSignature = format.ErrSignatureMismatch

	// ErrTruncated indicates the record is shorter than its signature.
	ErrTruncated = format.ErrTruncated

	// ErrCorruptHeader indicates the header walk reached an inconsistent state.
	ErrCorruptHeader = errors.New("item: corrupt header")

	// ErrUnknownBase indicates an extended item whose code has no item-base entry.
	ErrUnknownBase = errors.New("item: unknown item base")

	// ErrInvalidHeader indicates a Header that cannot be encoded.
	ErrInvalidHeader = errors.New("item: invalid header")
)
