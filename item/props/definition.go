package props

import (
	"fmt"

	"github.com/joshuapare/d2ikit/internal/format"
)

// SentinelID terminates a property list.
const SentinelID uint16 = format.SentinelID

// Definition describes how one property id is stored.
type Definition struct {
	ID         uint16
	Name       string
	ValueBits  int   // width of the stored value
	ParamBits  int   // 0 when the property carries no param
	AddBias    int64 // added to the logical value before storage
	Repeatable bool  // more than one instance may appear in a list
}

// Width returns the encoded size of one entry, id included.
func (d Definition) Width() int {
	return format.PropertyIDBits + d.ParamBits + d.ValueBits
}

// MinValue is the smallest logical value that can be stored.
func (d Definition) MinValue() int64 { return -d.AddBias }

// MaxValue is the largest logical value that can be stored.
func (d Definition) MaxValue() int64 { return int64(1)<<d.ValueBits - 1 - d.AddBias }

// MaxParam is the largest param that can be stored.
func (d Definition) MaxParam() int64 { return int64(1)<<d.ParamBits - 1 }

// CheckValue returns a *RangeError when v+AddBias does not fit ValueBits.
func (d Definition) CheckValue(v int64) error {
	if v < d.MinValue() || v > d.MaxValue() {
		return &RangeError{ID: d.ID, Field: "value", Value: v, Min: d.MinValue(), Max: d.MaxValue()}
	}
	return nil
}

// CheckParam returns a *RangeError when p does not fit ParamBits.
func (d Definition) CheckParam(p uint32) error {
	if int64(p) > d.MaxParam() {
		return &RangeError{ID: d.ID, Field: "param", Value: int64(p), Min: 0, Max: d.MaxParam()}
	}
	return nil
}

func (d Definition) validate() error {
	switch {
	case d.ID >= SentinelID:
		return fmt.Errorf("%w: id %d collides with the sentinel range", ErrInvalidDefinition, d.ID)
	case d.ValueBits < 1 || d.ValueBits > format.MaxValueBits:
		return fmt.Errorf("%w: id %d value width %d", ErrInvalidDefinition, d.ID, d.ValueBits)
	case d.ParamBits < 0 || d.ParamBits > format.MaxParamBits:
		return fmt.Errorf("%w: id %d param width %d", ErrInvalidDefinition, d.ID, d.ParamBits)
	case d.AddBias < 0 || d.AddBias > int64(1)<<d.ValueBits-1:
		// The bias must leave at least one storable value.
		return fmt.Errorf("%w: id %d bias %d for %d bits", ErrInvalidDefinition, d.ID, d.AddBias, d.ValueBits)
	}
	return nil
}

// Property is one decoded or requested property instance.
//
// Value and Param are logical quantities (bias removed). Offset is the bit
// position of the entry's id within the record it was decoded from; it is only
// meaningful for that exact record and is recomputed on every parse.
type Property struct {
	ID     uint16
	Value  int64
	Param  uint32
	Offset int
}

// IsSentinel reports whether p is the list terminator.
func (p Property) IsSentinel() bool { return p.ID == SentinelID }

// SameContent compares id, value and param, ignoring offsets.
func (p Property) SameContent(o Property) bool {
	return p.ID == o.ID && p.Value == o.Value && p.Param == o.Param
}

// EqualContent compares two lists by content and order, ignoring offsets.
func EqualContent(a, b []Property) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].SameContent(b[i]) {
			return false
		}
	}
	return true
}
