package bitstream

import "errors"

var (
	// ErrOutOfRange indicates a read, skip or splice reached past the end of the sequence.
	ErrOutOfRange = errors.New("bitstream: out of range")

	// ErrFieldWidth indicates a value wider than its declared field, or a width outside 0..64.
	ErrFieldWidth = errors.New("bitstream: value does not fit field width")
)
