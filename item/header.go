package item

import (
	"fmt"

	"github.com/joshuapare/d2ikit/internal/format"
	"github.com/joshuapare/d2ikit/item/bitstream"
)

// fieldWriter is the write-side counterpart of fieldReader.
type fieldWriter struct {
	seq *bitstream.Sequence
	err error
}

func (f *fieldWriter) bits(field string, v uint64, n int) {
	if f.err != nil {
		return
	}
	if err := f.seq.Append(v, n); err != nil {
		f.err = fmt.Errorf("%w: %s: %w", ErrInvalidHeader, field, err)
	}
}

func (f *fieldWriter) flag(b bool) {
	if f.err == nil {
		f.seq.AppendBool(b)
	}
}

func (f *fieldWriter) zero(n int) {
	f.bits("reserved", 0, n)
}

func (f *fieldWriter) name(field, name string) {
	if f.err != nil {
		return
	}
	chars, err := encodeName(name, format.MaxNameChars)
	if err != nil {
		f.err = err
		return
	}
	for _, c := range chars {
		f.bits(field, uint64(c), format.NameCharBits)
	}
	if len(chars) < format.MaxNameChars {
		f.bits(field, 0, format.NameCharBits)
	}
}

// EncodeHeader writes h in the order Walk reads it. Reserved bits are written
// as zero. Presence of base-dependent fields follows the item-base table, not
// the Has* fields of h, so the result always walks back to the same layout.
func (w *Walker) EncodeHeader(h *Header) (*bitstream.Sequence, error) {
	f := &fieldWriter{seq: bitstream.New(256)}

	f.flag(h.Flags.Quest)
	f.zero(format.FlagReserved1Bits)
	f.flag(h.Flags.Identified)
	f.zero(format.FlagReserved2Bits)
	f.zero(format.FlagDupedBits)
	f.flag(h.Flags.Socketed)
	f.zero(format.FlagReserved3Bits)
	f.zero(format.FlagIllegalBits)
	f.flag(h.Flags.Ear)
	f.flag(h.Flags.Starter)
	f.zero(format.FlagReserved4Bits)
	f.flag(h.Flags.Simple)
	f.flag(h.Flags.Ethereal)
	f.zero(format.FlagReserved5Bits)
	f.flag(h.Flags.Personalized)
	f.zero(format.FlagReserved6Bits)
	f.flag(h.Flags.Runeword)
	f.zero(format.FlagReserved7Bits)

	f.bits("version", uint64(h.Version), format.VersionBits)
	f.zero(format.Reserved8Bits)
	f.bits("location", uint64(h.Placement.Location), format.LocationBits)
	f.bits("equipped", uint64(h.Placement.Equipped), format.EquippedBits)
	f.bits("column", uint64(h.Placement.Column), format.ColumnBits)
	f.bits("row", uint64(h.Placement.Row), format.RowBits)
	f.bits("storage", uint64(h.Placement.Storage), format.StorageBits)

	if h.Flags.Ear {
		if h.Ear == nil {
			return nil, fmt.Errorf("%w: ear flag without ear payload", ErrInvalidHeader)
		}
		f.bits("ear class", uint64(h.Ear.Class), format.EarClassBits)
		f.bits("ear level", uint64(h.Ear.Level), format.EarLevelBits)
		f.name("ear name", h.Ear.Name)
		if f.err != nil {
			return nil, f.err
		}
		return f.seq, nil
	}

	raw, err := encodeCode(h.TypeCode, format.TypeCodeChars)
	if err != nil {
		return nil, err
	}
	for _, c := range raw {
		f.bits("type code", uint64(c), format.TypeCodeCharBits)
	}
	if !h.Flags.Simple {
		w.encodeExtended(f, h)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.seq, nil
}

func (w *Walker) encodeExtended(f *fieldWriter, h *Header) {
	base, ok := w.bases.Lookup(h.TypeCode)
	if !ok {
		f.err = fmt.Errorf("%w: %w: %q", ErrInvalidHeader, ErrUnknownBase, h.TypeCode)
		return
	}
	if !h.Quality.Valid() {
		f.err = fmt.Errorf("%w: quality %d", ErrInvalidHeader, uint8(h.Quality))
		return
	}

	f.bits("sockets filled", uint64(h.SocketsFilled), format.SocketsFilledBits)
	f.bits("guid", uint64(h.GUID), format.GUIDBits)
	f.bits("level", uint64(h.Level), format.LevelBits)
	f.bits("quality", uint64(h.Quality), format.QualityBits)

	f.flag(h.HasGraphic)
	if h.HasGraphic {
		f.bits("graphic", uint64(h.Graphic), format.GraphicBits)
	}
	f.flag(h.HasAutoprefix)
	if h.HasAutoprefix {
		f.bits("autoprefix", uint64(h.Autoprefix), format.AutoprefixBits)
	}

	switch h.Quality {
	case QualityLow, QualityHigh:
		f.bits("quality id", uint64(h.QualityData), format.LowHighQualityBits)
	case QualityMagic:
		f.bits("magic affixes", uint64(h.QualityData), format.MagicAffixBits)
	case QualitySet, QualityUnique:
		f.bits("set/unique id", uint64(h.QualityData), format.SetUniqueIDBits)
	case QualityRare, QualityCrafted:
		f.bits("rare name", uint64(h.QualityData), format.RareNameBits)
		for _, affix := range h.RareAffixes {
			f.flag(affix != 0)
			if affix != 0 {
				f.bits("rare affix", uint64(affix), format.RareAffixBits)
			}
		}
	case QualityHonorific:
		f.bits("honorific", uint64(h.QualityData), format.HonorificBits)
	}

	if h.Flags.Runeword {
		f.bits("runeword", uint64(h.RunewordCode), format.RunewordCodeBits)
	}
	if h.Flags.Personalized {
		f.name("personalized name", h.PersonalizedName)
	}
	f.flag(h.Tome)

	if base.IsArmor() {
		w.encodeStat(f, "defense", format.StatDefense, h.Defense)
	}
	if base.IsArmor() || base.IsWeapon() {
		w.encodeStat(f, "max durability", format.StatMaxDurability, h.MaxDurability)
		if h.MaxDurability > 0 {
			w.encodeStat(f, "durability", format.StatDurability, h.Durability)
		}
	}
	if base.Stackable {
		f.bits("quantity", uint64(h.Quantity), format.QuantityBits)
	}
	if h.Flags.Socketed {
		f.bits("socket count", uint64(h.SocketCount), format.SocketCountBits)
	}
	if h.Quality == QualitySet {
		f.bits("set list flags", uint64(h.SetListFlags), format.SetListFlagBits)
	}
}

func (w *Walker) encodeStat(f *fieldWriter, field string, id uint16, v int64) {
	if f.err != nil {
		return
	}
	def, err := w.props.Require(id)
	if err != nil {
		f.err = fmt.Errorf("%w: %s: %w", ErrInvalidHeader, field, err)
		return
	}
	if err := def.CheckValue(v); err != nil {
		f.err = fmt.Errorf("%w: %s: %w", ErrInvalidHeader, field, err)
		return
	}
	f.bits(field, uint64(v+def.AddBias), def.ValueBits)
}
