package item_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/d2ikit/internal/testutil"
	"github.com/joshuapare/d2ikit/item"
	"github.com/joshuapare/d2ikit/item/bitstream"
	"github.com/joshuapare/d2ikit/item/props"
)

// ringPropertiesStart is 60 bits of flags and placement, 32 bits of type
// code, 46 bits of identity, two absent optional flags, 22 bits of magic
// affixes and the tome bit.
const ringPropertiesStart = 60 + 32 + 46 + 2 + 22 + 1

func TestParse_MagicRing(t *testing.T) {
	p := testutil.Parser(t)
	data := testutil.Build(t, p, testutil.RingHeader(), props.Property{ID: 79, Value: 9})

	rec, err := p.Parse(data)
	require.NoError(t, err)

	require.Equal(t, "rin", rec.TypeCode)
	require.Equal(t, testutil.FixtureGUID, rec.GUID)
	require.Equal(t, uint8(42), rec.Level)
	require.Equal(t, item.QualityMagic, rec.Quality)
	require.Equal(t, uint32(0x2A5A5), rec.QualityData)
	require.True(t, rec.Flags.Identified)
	require.True(t, rec.Extended())
	require.Equal(t, uint8(3), rec.Placement.Column)

	require.Equal(t, ringPropertiesStart, rec.PropertiesStart)
	require.Len(t, rec.Properties, 1)
	require.Equal(t, props.Property{ID: 79, Value: 9, Offset: ringPropertiesStart}, rec.Properties[0])
	require.Equal(t, ringPropertiesStart+18+9, rec.PropertiesEnd)
	require.Equal(t, rec.PropertiesEnd, rec.BodyEnd)
	require.Less(t, rec.Trailing(), 8)
	require.True(t, rec.Bits.Aligned())

	// Stored value is value + bias.
	id, err := rec.Bits.Uint(ringPropertiesStart, 9)
	require.NoError(t, err)
	require.Equal(t, uint64(79), id)
	stored, err := rec.Bits.Uint(ringPropertiesStart+9, 9)
	require.NoError(t, err)
	require.Equal(t, uint64(109), stored)
}

func TestParse_WriteRoundTrip(t *testing.T) {
	p := testutil.Parser(t)
	headers := map[string]*item.Header{
		"ring":     testutil.RingHeader(),
		"armor":    testutil.ArmorHeader(),
		"runeword": testutil.RunewordHeader(),
		"simple":   testutil.SimpleHeader(),
	}
	for name, h := range headers {
		t.Run(name, func(t *testing.T) {
			data := testutil.Build(t, p, h,
				props.Property{ID: 0, Value: 10},
				props.Property{ID: 97, Value: 1, Param: 54},
				props.Property{ID: 97, Value: 3, Param: 149},
			)
			rec := testutil.Parse(t, p, data)
			require.Equal(t, data, item.Write(rec))
			require.Len(t, rec.Properties, 3)
			require.Equal(t, uint32(149), rec.Properties[2].Param)
		})
	}
}

func TestParse_ArmorFields(t *testing.T) {
	p := testutil.Parser(t)
	rec := testutil.Parse(t, p, testutil.Build(t, p, testutil.ArmorHeader()))

	require.True(t, rec.HasDefense)
	require.Equal(t, int64(45), rec.Defense)
	require.True(t, rec.HasDurability)
	require.Equal(t, int64(12), rec.MaxDurability)
	require.Equal(t, int64(9), rec.Durability)
	require.True(t, rec.HasSocketCount)
	require.Equal(t, uint8(2), rec.SocketCount)
	require.False(t, rec.HasQuantity)
	require.True(t, rec.Flags.Ethereal)
	require.Equal(t, [6]uint16{5, 0, 700, 0, 0, 2047}, rec.RareAffixes)
	require.Empty(t, rec.Properties)
}

func TestParse_ZeroMaxDurabilitySkipsCurrent(t *testing.T) {
	p := testutil.Parser(t)
	h := testutil.ArmorHeader()
	h.MaxDurability = 0
	h.Durability = 0
	indestructible := testutil.Parse(t, p, testutil.Build(t, p, h))

	full := testutil.Parse(t, p, testutil.Build(t, p, testutil.ArmorHeader()))
	// Current durability is 9 bits wide.
	require.Equal(t, full.PropertiesStart-9, indestructible.PropertiesStart)
}

func TestParse_QualityBlocks(t *testing.T) {
	p := testutil.Parser(t)
	base := ringPropertiesStart - 22

	tests := []struct {
		name    string
		quality item.Quality
		data    uint32
		affixes [6]uint16
		width   int
	}{
		{"low", item.QualityLow, 5, [6]uint16{}, 3},
		{"normal", item.QualityNormal, 0, [6]uint16{}, 0},
		{"superior", item.QualityHigh, 7, [6]uint16{}, 3},
		{"magic", item.QualityMagic, 1 << 21, [6]uint16{}, 22},
		{"set", item.QualitySet, 1234, [6]uint16{}, 15 + 5},
		{"rare", item.QualityRare, 0xBEEF, [6]uint16{1, 2, 3, 4, 5, 6}, 16 + 6*12},
		{"rare sparse", item.QualityRare, 1, [6]uint16{0, 9, 0, 0, 0, 0}, 16 + 6 + 11},
		{"unique", item.QualityUnique, 32767, [6]uint16{}, 15},
		{"crafted", item.QualityCrafted, 2, [6]uint16{0, 0, 0, 0, 0, 1}, 16 + 6 + 11},
		{"honorific", item.QualityHonorific, 65535, [6]uint16{}, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testutil.RingHeader()
			h.Quality = tt.quality
			h.QualityData = tt.data
			h.RareAffixes = tt.affixes

			rec := testutil.Parse(t, p, testutil.Build(t, p, h, props.Property{ID: 127, Value: 2}))
			require.Equal(t, tt.quality, rec.Quality)
			require.Equal(t, tt.data, rec.QualityData)
			require.Equal(t, tt.affixes, rec.RareAffixes)
			require.Equal(t, base+tt.width+1, rec.PropertiesStart)
			require.Equal(t, tt.quality == item.QualitySet, rec.HasSetLists)
			require.Len(t, rec.Properties, 1)
		})
	}
}

func TestParse_OptionalFlags(t *testing.T) {
	p := testutil.Parser(t)
	h := testutil.RingHeader()
	h.HasGraphic = true
	h.Graphic = 6
	h.HasAutoprefix = true
	h.Autoprefix = 1500
	h.Tome = true

	rec := testutil.Parse(t, p, testutil.Build(t, p, h))
	require.True(t, rec.HasGraphic)
	require.Equal(t, uint8(6), rec.Graphic)
	require.True(t, rec.HasAutoprefix)
	require.Equal(t, uint16(1500), rec.Autoprefix)
	require.True(t, rec.Tome)
	require.Equal(t, ringPropertiesStart+3+11, rec.PropertiesStart)
}

func TestParse_RunewordSecondList(t *testing.T) {
	p := testutil.Parser(t)
	built, err := p.Build(testutil.RunewordHeader(),
		[]props.Property{{ID: 21, Value: 3}},
		[]props.Property{{ID: 93, Value: 40}, {ID: 39, Value: -10}},
	)
	require.NoError(t, err)

	rec := testutil.Parse(t, p, item.Write(built))
	require.Equal(t, "Griswold", rec.PersonalizedName)
	require.Equal(t, uint16(2718), rec.RunewordCode)
	require.Len(t, rec.Properties, 1)
	require.True(t, props.EqualContent(
		[]props.Property{{ID: 93, Value: 40}, {ID: 39, Value: -10}},
		rec.RunewordProperties,
	))
	require.Greater(t, rec.BodyEnd, rec.PropertiesEnd)
}

func TestParse_SixteenCharacterName(t *testing.T) {
	p := testutil.Parser(t)
	h := testutil.RunewordHeader()
	h.PersonalizedName = "ABCDEFGHIJKLMNOP"

	rec := testutil.Parse(t, p, testutil.Build(t, p, h))
	require.Equal(t, "ABCDEFGHIJKLMNOP", rec.PersonalizedName)
}

func TestParse_SimpleItem(t *testing.T) {
	p := testutil.Parser(t)
	rec := testutil.Parse(t, p, testutil.Build(t, p, testutil.SimpleHeader(), props.Property{ID: 7, Value: 5}))

	require.False(t, rec.Extended())
	require.Equal(t, "hp1", rec.TypeCode)
	require.Equal(t, 60+32, rec.PropertiesStart)
	require.Len(t, rec.Properties, 1)
}

func TestParse_EarItem(t *testing.T) {
	p := testutil.Parser(t)
	h := &item.Header{
		Flags: item.Flags{Ear: true},
		Ear:   &item.Ear{Class: 3, Level: 88, Name: "Rakanishu"},
	}
	rec := testutil.Parse(t, p, testutil.Build(t, p, h))

	require.False(t, rec.HasProperties())
	require.Equal(t, -1, rec.PropertiesStart)
	require.NotNil(t, rec.Ear)
	require.Equal(t, "Rakanishu", rec.Ear.Name)
	require.Equal(t, uint8(88), rec.Ear.Level)
	require.Nil(t, rec.Properties)
}

func TestParse_UnknownPropertyInList(t *testing.T) {
	p := testutil.Parser(t)
	data := testutil.Build(t, p, testutil.RingHeader(), props.Property{ID: 0, Value: 1})
	rec := testutil.Parse(t, p, data)

	// Rewrite the id of the only entry to one the table does not define.
	seq := rec.Bits.Clone()
	require.NoError(t, seq.Remove(rec.PropertiesStart, 9))
	require.NoError(t, seq.Insert(rec.PropertiesStart, testutil.Bits(t, "000110011"))) // 408 LSB first

	_, err := p.ParseBits(seq)
	require.ErrorIs(t, err, props.ErrUnknownProperty)
}

// ============================================================================
// Error paths
// ============================================================================

func TestParse_BadSignature(t *testing.T) {
	p := testutil.Parser(t)

	_, err := p.Parse([]byte("XX\x00\x00"))
	require.ErrorIs(t, err, item.ErrBadSignature)

	_, err = p.Parse([]byte("J"))
	require.ErrorIs(t, err, item.ErrTruncated)
}

func TestParse_TruncatedHeader(t *testing.T) {
	p := testutil.Parser(t)
	data := testutil.Build(t, p, testutil.RingHeader())

	// 12 body bytes end inside the GUID.
	_, err := p.Parse(data[:2+12])
	require.ErrorIs(t, err, item.ErrCorruptHeader)
	require.ErrorIs(t, err, bitstream.ErrOutOfRange)
	require.Contains(t, err.Error(), "guid")
}

func TestParse_UnknownBase(t *testing.T) {
	p := testutil.Parser(t)
	h := testutil.SimpleHeader()
	h.TypeCode = "zzz"
	// Simple items never consult the base table.
	data := testutil.Build(t, p, h)

	rec := testutil.Parse(t, p, data)
	seq := rec.Bits.Clone()
	const simpleBit = 21
	require.NoError(t, seq.Remove(simpleBit, 1))
	require.NoError(t, seq.Insert(simpleBit, testutil.Bits(t, "0")))

	_, err := p.ParseBits(seq)
	require.ErrorIs(t, err, item.ErrCorruptHeader)
	require.ErrorIs(t, err, item.ErrUnknownBase)
}

func TestParse_InvalidQuality(t *testing.T) {
	p := testutil.Parser(t)
	rec := testutil.Parse(t, p, testutil.Build(t, p, testutil.RingHeader()))

	qualityAt := 60 + 32 + 3 + 32 + 7
	seq := rec.Bits.Clone()
	require.NoError(t, seq.Remove(qualityAt, 4))
	require.NoError(t, seq.Insert(qualityAt, testutil.Bits(t, "0000")))

	_, err := p.ParseBits(seq)
	require.ErrorIs(t, err, item.ErrCorruptHeader)
	require.Contains(t, err.Error(), "quality")
}

func TestBuild_RejectsInvalidHeader(t *testing.T) {
	p := testutil.Parser(t)

	h := testutil.RingHeader()
	h.Quality = 0
	_, err := p.Build(h, nil, nil)
	require.ErrorIs(t, err, item.ErrInvalidHeader)

	h = testutil.RingHeader()
	h.TypeCode = "toolong"
	_, err = p.Build(h, nil, nil)
	require.ErrorIs(t, err, item.ErrInvalidHeader)

	h = testutil.ArmorHeader()
	h.Defense = -100
	_, err = p.Build(h, nil, nil)
	require.ErrorIs(t, err, item.ErrInvalidHeader)
	require.ErrorIs(t, err, props.ErrValueOutOfRange)

	_, err = p.Build(testutil.RingHeader(), []props.Property{{ID: 0, Value: 1000}}, nil)
	require.ErrorIs(t, err, props.ErrValueOutOfRange)
	require.False(t, errors.Is(err, item.ErrInvalidHeader))
}
