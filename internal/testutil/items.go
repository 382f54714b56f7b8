// Package testutil builds synthetic item records for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/d2ikit/item"
	"github.com/joshuapare/d2ikit/item/bitstream"
	"github.com/joshuapare/d2ikit/item/itembase"
	"github.com/joshuapare/d2ikit/item/props"
)

// FixtureGUID is the GUID every extended fixture header carries.
const FixtureGUID uint32 = 0xC0FFEE42

// Tables returns the shipped property and item-base tables.
// Calls t.Fatal if either fails to load.
func Tables(t testing.TB) (*props.Table, *itembase.Table) {
	t.Helper()

	pt, err := props.Default()
	if err != nil {
		t.Fatalf("Failed to load property table: %v", err)
	}
	bt, err := itembase.Default()
	if err != nil {
		t.Fatalf("Failed to load item-base table: %v", err)
	}
	return pt, bt
}

// Parser returns a parser bound to the shipped tables.
func Parser(t testing.TB) *item.Parser {
	t.Helper()
	pt, bt := Tables(t)
	return item.NewParser(pt, bt)
}

// RingHeader returns an identified magic ring header. Rings carry no
// base-dependent fields, so the property list follows the tome bit.
func RingHeader() *item.Header {
	return &item.Header{
		Flags:       item.Flags{Identified: true},
		Version:     101,
		Placement:   item.Placement{Location: 0, Column: 3, Row: 1, Storage: 1},
		TypeCode:    "rin",
		GUID:        FixtureGUID,
		Level:       42,
		Quality:     item.QualityMagic,
		QualityData: 0x2A5A5,
	}
}

// ArmorHeader returns a socketed, ethereal rare helm with defense and
// durability fields.
func ArmorHeader() *item.Header {
	return &item.Header{
		Flags:         item.Flags{Identified: true, Socketed: true, Ethereal: true},
		Version:       101,
		Placement:     item.Placement{Location: 1, Equipped: 1},
		TypeCode:      "cap",
		SocketsFilled: 1,
		GUID:          FixtureGUID,
		Level:         77,
		Quality:       item.QualityRare,
		QualityData:   0x1234,
		RareAffixes:   [6]uint16{5, 0, 700, 0, 0, 2047},
		Defense:       45,
		MaxDurability: 12,
		Durability:    9,
		SocketCount:   2,
	}
}

// RunewordHeader returns a personalized runeword sword.
func RunewordHeader() *item.Header {
	return &item.Header{
		Flags: item.Flags{
			Identified:   true,
			Socketed:     true,
			Personalized: true,
			Runeword:     true,
		},
		Version:          101,
		TypeCode:         "ssd",
		GUID:             FixtureGUID,
		Level:            30,
		Quality:          item.QualityNormal,
		RunewordCode:     2718,
		PersonalizedName: "Griswold",
		MaxDurability:    24,
		Durability:       24,
		SocketCount:      2,
	}
}

// SimpleHeader returns a simple (non-extended) potion header.
func SimpleHeader() *item.Header {
	return &item.Header{
		Flags:    item.Flags{Identified: true, Simple: true},
		Version:  101,
		TypeCode: "hp1",
	}
}

// Build encodes h with the given property list and returns the record bytes.
// Calls t.Fatal if encoding fails.
func Build(t testing.TB, p *item.Parser, h *item.Header, properties ...props.Property) []byte {
	t.Helper()

	rec, err := p.Build(h, properties, nil)
	if err != nil {
		t.Fatalf("Failed to build item: %v", err)
	}
	return item.Write(rec)
}

// Parse parses data and calls t.Fatal on error.
func Parse(t testing.TB, p *item.Parser, data []byte) *item.Record {
	t.Helper()

	rec, err := p.Parse(data)
	if err != nil {
		t.Fatalf("Failed to parse item: %v", err)
	}
	return rec
}

// Bits parses a '0'/'1' string in read order.
func Bits(t testing.TB, s string) *bitstream.Sequence {
	t.Helper()

	seq, err := bitstream.Parse(s)
	if err != nil {
		t.Fatalf("Failed to parse bits %q: %v", s, err)
	}
	return seq
}

// WriteItemFile writes data to name inside a fresh temporary directory and
// returns the path.
func WriteItemFile(t testing.TB, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write item file: %v", err)
	}
	return path
}
