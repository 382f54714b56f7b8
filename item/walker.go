package item

import (
	"fmt"

	"github.com/joshuapare/d2ikit/internal/format"
	"github.com/joshuapare/d2ikit/item/bitstream"
	"github.com/joshuapare/d2ikit/item/itembase"
	"github.com/joshuapare/d2ikit/item/props"
)

// Walker consumes the fields that precede the property list.
//
// A Walker holds only immutable tables and may be shared between goroutines.
type Walker struct {
	props *props.Table
	bases *itembase.Table
}

// NewWalker returns a walker that consults pt for stat widths and bt for
// class-dependent fields.
func NewWalker(pt *props.Table, bt *itembase.Table) *Walker {
	return &Walker{props: pt, bases: bt}
}

// fieldReader wraps a bitstream.Reader and keeps the first failure so the
// walk reads as a flat list of fields.
type fieldReader struct {
	r   *bitstream.Reader
	err error
}

func (f *fieldReader) bits(field string, n int) uint64 {
	if f.err != nil {
		return 0
	}
	pos := f.r.Position()
	v, err := f.r.ReadBits(n)
	if err != nil {
		f.err = fmt.Errorf("%w: %s at bit %d: %w", ErrCorruptHeader, field, pos, err)
		return 0
	}
	return v
}

func (f *fieldReader) flag(field string) bool {
	return f.bits(field, 1) == 1
}

func (f *fieldReader) skip(field string, n int) {
	f.bits(field, n)
}

func (f *fieldReader) fail(field string, err error) {
	if f.err == nil {
		f.err = fmt.Errorf("%w: %s at bit %d: %w", ErrCorruptHeader, field, f.r.Position(), err)
	}
}

// name reads up to maxChars 7-bit characters, stopping after a zero.
func (f *fieldReader) name(field string) string {
	var chars []byte
	for range format.MaxNameChars {
		c := byte(f.bits(field, format.NameCharBits))
		if f.err != nil || c == 0 {
			break
		}
		chars = append(chars, c)
	}
	if f.err != nil {
		return ""
	}
	s, err := decodeName(chars)
	if err != nil {
		f.fail(field, err)
	}
	return s
}

// Walk reads the header at r's cursor and leaves r positioned at the first
// property entry. For ear items r is left after the ear name and
// PropertiesStart is -1.
func (w *Walker) Walk(r *bitstream.Reader) (Header, error) {
	f := &fieldReader{r: r}
	var h Header

	h.Flags.Quest = f.flag("quest")
	f.skip("reserved", format.FlagReserved1Bits)
	h.Flags.Identified = f.flag("identified")
	f.skip("reserved", format.FlagReserved2Bits)
	f.skip("duped", format.FlagDupedBits)
	h.Flags.Socketed = f.flag("socketed")
	f.skip("reserved", format.FlagReserved3Bits)
	f.skip("illegal", format.FlagIllegalBits)
	h.Flags.Ear = f.flag("ear")
	h.Flags.Starter = f.flag("starter")
	f.skip("reserved", format.FlagReserved4Bits)
	h.Flags.Simple = f.flag("simple")
	h.Flags.Ethereal = f.flag("ethereal")
	f.skip("reserved", format.FlagReserved5Bits)
	h.Flags.Personalized = f.flag("personalized")
	f.skip("reserved", format.FlagReserved6Bits)
	h.Flags.Runeword = f.flag("runeword")
	f.skip("reserved", format.FlagReserved7Bits)

	h.Version = uint8(f.bits("version", format.VersionBits))
	f.skip("reserved", format.Reserved8Bits)
	h.Placement = Placement{
		Location: uint8(f.bits("location", format.LocationBits)),
		Equipped: uint8(f.bits("equipped", format.EquippedBits)),
		Column:   uint8(f.bits("column", format.ColumnBits)),
		Row:      uint8(f.bits("row", format.RowBits)),
		Storage:  uint8(f.bits("storage", format.StorageBits)),
	}

	if h.Flags.Ear {
		ear := &Ear{
			Class: uint8(f.bits("ear class", format.EarClassBits)),
			Level: uint8(f.bits("ear level", format.EarLevelBits)),
		}
		ear.Name = f.name("ear name")
		if f.err != nil {
			return Header{}, f.err
		}
		h.Ear = ear
		h.PropertiesStart = -1
		return h, nil
	}

	raw := make([]byte, format.TypeCodeChars)
	for i := range raw {
		raw[i] = byte(f.bits("type code", format.TypeCodeCharBits))
	}
	if f.err != nil {
		return Header{}, f.err
	}
	code, err := decodeCode(raw)
	if err != nil {
		f.fail("type code", err)
		return Header{}, f.err
	}
	h.TypeCode = code

	if !h.Flags.Simple {
		w.walkExtended(f, &h)
	}
	if f.err != nil {
		return Header{}, f.err
	}
	h.PropertiesStart = r.Position()
	return h, nil
}

func (w *Walker) walkExtended(f *fieldReader, h *Header) {
	base, ok := w.bases.Lookup(h.TypeCode)
	if !ok {
		f.fail("type code", fmt.Errorf("%w: %q", ErrUnknownBase, h.TypeCode))
		return
	}

	h.SocketsFilled = uint8(f.bits("sockets filled", format.SocketsFilledBits))
	h.GUID = uint32(f.bits("guid", format.GUIDBits))
	h.Level = uint8(f.bits("level", format.LevelBits))
	h.Quality = Quality(f.bits("quality", format.QualityBits))
	if f.err != nil {
		return
	}
	if !h.Quality.Valid() {
		f.fail("quality", fmt.Errorf("value %d", uint8(h.Quality)))
		return
	}

	if h.HasGraphic = f.flag("graphic flag"); h.HasGraphic {
		h.Graphic = uint8(f.bits("graphic", format.GraphicBits))
	}
	if h.HasAutoprefix = f.flag("autoprefix flag"); h.HasAutoprefix {
		h.Autoprefix = uint16(f.bits("autoprefix", format.AutoprefixBits))
	}

	switch h.Quality {
	case QualityLow, QualityHigh:
		h.QualityData = uint32(f.bits("quality id", format.LowHighQualityBits))
	case QualityMagic:
		h.QualityData = uint32(f.bits("magic affixes", format.MagicAffixBits))
	case QualitySet, QualityUnique:
		h.QualityData = uint32(f.bits("set/unique id", format.SetUniqueIDBits))
	case QualityRare, QualityCrafted:
		h.QualityData = uint32(f.bits("rare name", format.RareNameBits))
		for i := range h.RareAffixes {
			if f.flag("rare affix flag") {
				h.RareAffixes[i] = uint16(f.bits("rare affix", format.RareAffixBits))
			}
		}
	case QualityHonorific:
		h.QualityData = uint32(f.bits("honorific", format.HonorificBits))
	}

	if h.Flags.Runeword {
		h.RunewordCode = uint16(f.bits("runeword", format.RunewordCodeBits))
	}
	if h.Flags.Personalized {
		h.PersonalizedName = f.name("personalized name")
	}
	h.Tome = f.flag("tome")

	if base.IsArmor() {
		h.HasDefense = true
		h.Defense = w.stat(f, "defense", format.StatDefense)
	}
	if base.IsArmor() || base.IsWeapon() {
		h.HasDurability = true
		h.MaxDurability = w.stat(f, "max durability", format.StatMaxDurability)
		if h.MaxDurability > 0 {
			h.Durability = w.stat(f, "durability", format.StatDurability)
		}
	}
	if base.Stackable {
		h.HasQuantity = true
		h.Quantity = uint16(f.bits("quantity", format.QuantityBits))
	}
	if h.Flags.Socketed {
		h.HasSocketCount = true
		h.SocketCount = uint8(f.bits("socket count", format.SocketCountBits))
	}
	if h.Quality == QualitySet {
		h.HasSetLists = true
		h.SetListFlags = uint8(f.bits("set list flags", format.SetListFlagBits))
	}
}

// stat reads a header field whose width and bias come from a property
// definition.
func (w *Walker) stat(f *fieldReader, field string, id uint16) int64 {
	if f.err != nil {
		return 0
	}
	def, err := w.props.Require(id)
	if err != nil {
		f.fail(field, err)
		return 0
	}
	return int64(f.bits(field, def.ValueBits)) - def.AddBias
}
