package edit

import (
	"fmt"
	"slices"

	"github.com/joshuapare/d2ikit/item/props"
)

// Change overwrites the value and param of one existing instance.
type Change struct {
	ID uint16
	// Occurrence selects among instances of ID, counted from 0 in list order.
	Occurrence int
	Value      int64
	Param      uint32
}

// Delta describes an edit of a property list.
type Delta struct {
	Add    []props.Property
	Remove []uint16
	Change []Change
}

// Empty reports whether d changes nothing.
func (d Delta) Empty() bool {
	return len(d.Add) == 0 && len(d.Remove) == 0 && len(d.Change) == 0
}

// merge validates d against existing and returns the new list. existing is
// not modified.
func merge(codec *props.Codec, existing []props.Property, d Delta) ([]props.Property, error) {
	for i, p := range d.Add {
		if _, err := codec.Check(p); err != nil {
			return nil, fmt.Errorf("add %d: %w", i, err)
		}
	}
	for i, c := range d.Change {
		if _, err := codec.Check(props.Property{ID: c.ID, Value: c.Value, Param: c.Param}); err != nil {
			return nil, fmt.Errorf("change %d: %w", i, err)
		}
		if c.Occurrence < 0 {
			return nil, fmt.Errorf("change %d: %w: id %d occurrence %d", i, ErrPropertyNotFound, c.ID, c.Occurrence)
		}
	}

	out := make([]props.Property, 0, len(existing)+len(d.Add))
	for _, p := range existing {
		if !slices.Contains(d.Remove, p.ID) {
			out = append(out, p)
		}
	}

	for i, c := range d.Change {
		at := nth(out, c.ID, c.Occurrence)
		if at < 0 {
			return nil, fmt.Errorf("change %d: %w: id %d occurrence %d", i, ErrPropertyNotFound, c.ID, c.Occurrence)
		}
		out[at].Value = c.Value
		out[at].Param = c.Param
	}

	for i, p := range d.Add {
		def, _ := codec.Table().Lookup(p.ID)
		if !def.Repeatable && nth(out, p.ID, 0) >= 0 {
			return nil, fmt.Errorf("add %d: %w: id %d", i, ErrDuplicateProperty, p.ID)
		}
		out = append(out, props.Property{ID: p.ID, Value: p.Value, Param: p.Param})
	}
	return out, nil
}

// nth returns the index of the n-th instance of id, or -1.
func nth(ps []props.Property, id uint16, n int) int {
	for i, p := range ps {
		if p.ID != id {
			continue
		}
		if n == 0 {
			return i
		}
		n--
	}
	return -1
}
