package edit

import (
	"errors"

	"github.com/joshuapare/d2ikit/item/props"
	"github.com/joshuapare/d2ikit/item/verify"
)

var (
	// ErrUnknownProperty indicates a delta names an id with no definition.
	ErrUnknownProperty = props.ErrUnknownProperty

	// ErrValueOutOfRange indicates a value or param does not fit its width.
	ErrValueOutOfRange = props.ErrValueOutOfRange

	// ErrDuplicateProperty indicates an addition of an id that is already
	// present and whose definition does not allow repeats.
	ErrDuplicateProperty = errors.New("edit: duplicate property")

	// ErrPropertyNotFound indicates a change targets an instance that is
	// not present.
	ErrPropertyNotFound = errors.New("edit: property not found")

	// ErrNoPropertySection indicates the record has no property list (ear items).
	ErrNoPropertySection = errors.New("edit: record has no property section")

	// ErrTrailingData indicates the record has a byte or more after its last
	// field that cannot be placed after a rebuild.
	ErrTrailingData = errors.New("edit: trailing data after item body")

	// ErrStaleOffset indicates a property offset does not point at that
	// property in the record's bits.
	ErrStaleOffset = errors.New("edit: stale property offset")

	// ErrReconstructionFailed indicates the rebuilt record did not verify.
	ErrReconstructionFailed = verify.ErrReconstructionFailed
)
