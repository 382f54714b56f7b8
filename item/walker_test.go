package item_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/d2ikit/internal/testutil"
	"github.com/joshuapare/d2ikit/item"
	"github.com/joshuapare/d2ikit/item/bitstream"
	"github.com/joshuapare/d2ikit/item/props"
)

// Why this test: EncodeHeader and Walk must agree field for field, or Build
// would produce records the parser cannot read back.
func TestWalker_EncodeWalkAgree(t *testing.T) {
	w := testutil.Parser(t).Walker()
	headers := map[string]*item.Header{
		"ring":     testutil.RingHeader(),
		"armor":    testutil.ArmorHeader(),
		"runeword": testutil.RunewordHeader(),
		"simple":   testutil.SimpleHeader(),
	}
	for name, h := range headers {
		t.Run(name, func(t *testing.T) {
			seq, err := w.EncodeHeader(h)
			require.NoError(t, err)

			r := bitstream.NewReader(seq)
			got, err := w.Walk(r)
			require.NoError(t, err)
			require.Equal(t, seq.Len(), got.PropertiesStart)
			require.Zero(t, r.Remaining())

			again, err := w.EncodeHeader(&got)
			require.NoError(t, err)
			require.True(t, seq.Equal(again))

			require.Equal(t, h.Flags, got.Flags)
			require.Equal(t, h.TypeCode, got.TypeCode)
			require.Equal(t, h.Placement, got.Placement)
		})
	}
}

func TestWalker_FlagPositions(t *testing.T) {
	w := testutil.Parser(t).Walker()
	h := testutil.SimpleHeader()
	h.Flags = item.Flags{
		Quest:        true,
		Identified:   true,
		Socketed:     true,
		Starter:      true,
		Simple:       true,
		Ethereal:     true,
		Personalized: true,
		Runeword:     true,
	}
	seq, err := w.EncodeHeader(h)
	require.NoError(t, err)

	positions := map[string]int{
		"quest":        0,
		"identified":   4,
		"socketed":     11,
		"starter":      17,
		"simple":       21,
		"ethereal":     22,
		"personalized": 24,
		"runeword":     26,
	}
	for name, pos := range positions {
		v, err := seq.Uint(pos, 1)
		require.NoError(t, err)
		require.Equal(t, uint64(1), v, name)
	}
	ear, err := seq.Uint(16, 1)
	require.NoError(t, err)
	require.Zero(t, ear)
}

func TestWalker_EmptyInput(t *testing.T) {
	w := testutil.Parser(t).Walker()
	_, err := w.Walk(bitstream.NewReader(bitstream.New(0)))
	require.ErrorIs(t, err, item.ErrCorruptHeader)
	require.ErrorIs(t, err, bitstream.ErrOutOfRange)
}

func TestRecord_CloneIsDeep(t *testing.T) {
	p := testutil.Parser(t)
	rec := testutil.Parse(t, p, testutil.Build(t, p, testutil.RingHeader(), props.Property{ID: 0, Value: 5}))

	c := rec.Clone()
	c.Properties[0].Value = 6
	require.NoError(t, c.Bits.Remove(0, 8))

	require.NotEqual(t, rec.Bits.Len(), c.Bits.Len())
	require.Equal(t, int64(5), rec.Properties[0].Value)
}

func TestQuality_String(t *testing.T) {
	require.Equal(t, "unique", item.QualityUnique.String())
	require.Equal(t, "quality(12)", item.Quality(12).String())
	require.False(t, item.Quality(0).Valid())
}
