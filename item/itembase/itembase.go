// Package itembase provides the item-base table the header walker consults to
// decide which class-dependent fields an item carries.
package itembase

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidBase indicates a malformed item-base entry.
var ErrInvalidBase = errors.New("itembase: invalid base")

// Type codes whose descendants carry armor or weapon fields.
const (
	TypeArmor  = "armo"
	TypeWeapon = "weap"
)

// Known descendants of armo and weap. A full hierarchy lives in the game's
// ItemTypes table; these cover the codes item tables reference directly.
var (
	armorTypes = []string{
		"armo", "tors", "helm", "shie", "glov", "boot", "belt", "pelt", "phlm",
		"ashd", "pala", "head", "circ", "cr", "ba", "dr", "bhlm", "bshi", "btor",
		"hlms", "shld", "tow", "kite", "smal",
	}
	weaponTypes = []string{
		"weap", "swor", "axe", "mace", "pole", "bow", "xbow", "staf", "wand",
		"knif", "spea", "jave", "club", "scep", "hamm", "h2h", "orb",
		"bswd", "baxe", "bmac", "bpol", "bowq", "xboq", "bstf", "rod",
		"tkni", "taxe", "jav", "abow", "aspe",
	}
)

// Base describes one item code.
type Base struct {
	Code      string
	Name      string
	Types     []string // item type codes, most specific first
	Stackable bool
}

// IsArmor reports whether any of the base's types descends from armo.
func (b Base) IsArmor() bool { return b.inherits(armorTypes) }

// IsWeapon reports whether any of the base's types descends from weap.
func (b Base) IsWeapon() bool { return b.inherits(weaponTypes) }

func (b Base) inherits(family []string) bool {
	for _, t := range b.Types {
		if slices.Contains(family, t) {
			return true
		}
	}
	return false
}

// Table is an immutable code-keyed set of bases.
type Table struct {
	bases map[string]Base
	codes []string
}

// NewTable builds a table. Codes are trimmed; empty and duplicate codes are rejected.
func NewTable(bases []Base) (*Table, error) {
	t := &Table{bases: make(map[string]Base, len(bases))}
	for _, b := range bases {
		b.Code = NormalizeCode(b.Code)
		if b.Code == "" {
			return nil, fmt.Errorf("%w: empty code", ErrInvalidBase)
		}
		if _, dup := t.bases[b.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate code %q", ErrInvalidBase, b.Code)
		}
		b.Types = slices.Clone(b.Types)
		t.bases[b.Code] = b
		t.codes = append(t.codes, b.Code)
	}
	slices.Sort(t.codes)
	return t, nil
}

// Lookup returns the base for code. The code is normalized first.
func (t *Table) Lookup(code string) (Base, bool) {
	b, ok := t.bases[NormalizeCode(code)]
	return b, ok
}

// Len returns the number of bases.
func (t *Table) Len() int { return len(t.codes) }

// Bases returns every base ordered by code.
func (t *Table) Bases() []Base {
	out := make([]Base, 0, len(t.codes))
	for _, c := range t.codes {
		out = append(out, t.bases[c])
	}
	return out
}

// NormalizeCode trims padding from an on-disk type code.
func NormalizeCode(code string) string {
	return strings.TrimSpace(strings.TrimRight(code, "\x00 "))
}

// SplitTypes parses a comma-separated type list as stored in item tables.
func SplitTypes(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseStackable interprets the stackable column of item tables.
func ParseStackable(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}
