package item

import (
	"slices"

	"github.com/joshuapare/d2ikit/internal/format"
	"github.com/joshuapare/d2ikit/item/bitstream"
	"github.com/joshuapare/d2ikit/item/props"
)

// Flags holds the decoded flag block at the start of every record.
type Flags struct {
	Quest        bool
	Identified   bool
	Socketed     bool
	Ear          bool
	Starter      bool
	Simple       bool
	Ethereal     bool
	Personalized bool
	Runeword     bool
}

// Placement is where the item sits.
type Placement struct {
	Location uint8
	Equipped uint8
	Column   uint8
	Row      uint8
	Storage  uint8
}

// Ear is the payload of an ear item, which has no type code and no
// property section.
type Ear struct {
	Class uint8
	Level uint8
	Name  string
}

// Header holds every field that precedes the property list.
//
// Fields after TypeCode are only populated for extended items. Optional
// fields are recorded together with their presence so that EncodeHeader can
// reproduce the exact bits.
type Header struct {
	Flags     Flags
	Version   uint8
	Placement Placement
	Ear       *Ear

	TypeCode string

	SocketsFilled uint8
	GUID          uint32
	Level         uint8
	Quality       Quality

	HasGraphic    bool
	Graphic       uint8
	HasAutoprefix bool
	Autoprefix    uint16

	// QualityData is the low/high, set or unique id, or the magic affix pair
	// packed as read. Rare and crafted items store their name pair here.
	QualityData uint32
	// RareAffixes holds the six flag-gated rare/crafted affixes; 0 when absent.
	RareAffixes [format.RareAffixSlots]uint16

	RunewordCode     uint16
	PersonalizedName string
	Tome             bool

	HasDefense     bool
	Defense        int64
	HasDurability  bool
	MaxDurability  int64
	Durability     int64
	HasQuantity    bool
	Quantity       uint16
	HasSocketCount bool
	SocketCount    uint8
	HasSetLists    bool
	SetListFlags   uint8

	// PropertiesStart is the bit position where the property list begins, or
	// -1 for ear items.
	PropertiesStart int
}

// Extended reports whether the item carries the extended field block.
func (h *Header) Extended() bool { return !h.Flags.Simple && !h.Flags.Ear }

// HasProperties reports whether the record has a property section.
func (h *Header) HasProperties() bool { return !h.Flags.Ear }

// Record is a parsed item: its header, its decoded property lists and the bit
// sequence they were read from.
type Record struct {
	Header

	Properties         []props.Property
	RunewordProperties []props.Property

	// Bits is the full body after the signature, padding included.
	Bits *bitstream.Sequence

	// PropertiesEnd is the position just after the property list sentinel.
	PropertiesEnd int
	// BodyEnd is the position after the last meaningful field. Everything
	// from BodyEnd to Bits.Len() is zero padding.
	BodyEnd int
}

// PropertiesByID returns the instances of id in list order.
func (r *Record) PropertiesByID(id uint16) []props.Property {
	var out []props.Property
	for _, p := range r.Properties {
		if p.ID == id {
			out = append(out, p)
		}
	}
	return out
}

// Trailing returns the number of bits after BodyEnd.
func (r *Record) Trailing() int { return r.Bits.Len() - r.BodyEnd }

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	c := *r
	if r.Ear != nil {
		ear := *r.Ear
		c.Ear = &ear
	}
	c.Properties = slices.Clone(r.Properties)
	c.RunewordProperties = slices.Clone(r.RunewordProperties)
	if r.Bits != nil {
		c.Bits = r.Bits.Clone()
	}
	return &c
}
