package props

import (
	"fmt"
	"slices"
)

// Table is an immutable id-keyed set of definitions.
type Table struct {
	defs map[uint16]Definition
	ids  []uint16
}

// NewTable validates defs and builds a table. Duplicate ids are rejected.
func NewTable(defs []Definition) (*Table, error) {
	t := &Table{
		defs: make(map[uint16]Definition, len(defs)),
		ids:  make([]uint16, 0, len(defs)),
	}
	for _, d := range defs {
		if err := d.validate(); err != nil {
			return nil, err
		}
		if _, dup := t.defs[d.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidDefinition, d.ID)
		}
		t.defs[d.ID] = d
		t.ids = append(t.ids, d.ID)
	}
	slices.Sort(t.ids)
	return t, nil
}

// Lookup returns the definition for id.
func (t *Table) Lookup(id uint16) (Definition, bool) {
	d, ok := t.defs[id]
	return d, ok
}

// Require returns the definition for id or an *UnknownPropertyError.
func (t *Table) Require(id uint16) (Definition, error) {
	d, ok := t.defs[id]
	if !ok {
		return Definition{}, &UnknownPropertyError{ID: id}
	}
	return d, nil
}

// Len returns the number of definitions.
func (t *Table) Len() int { return len(t.ids) }

// Definitions returns every definition ordered by id.
func (t *Table) Definitions() []Definition {
	out := make([]Definition, 0, len(t.ids))
	for _, id := range t.ids {
		out = append(out, t.defs[id])
	}
	return out
}
