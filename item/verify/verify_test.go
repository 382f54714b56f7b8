package verify_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/d2ikit/internal/testutil"
	"github.com/joshuapare/d2ikit/item"
	"github.com/joshuapare/d2ikit/item/props"
	"github.com/joshuapare/d2ikit/item/verify"
)

func buildRing(t *testing.T, p *item.Parser, ps ...props.Property) *item.Record {
	t.Helper()
	return testutil.Parse(t, p, testutil.Build(t, p, testutil.RingHeader(), ps...))
}

func TestReconstruction_AcceptsMatchingCandidate(t *testing.T) {
	p := testutil.Parser(t)
	orig := buildRing(t, p, props.Property{ID: 0, Value: 5})
	want := []props.Property{{ID: 0, Value: 5}, {ID: 79, Value: 9}}
	candidate := testutil.Build(t, p, testutil.RingHeader(), want...)

	got, err := verify.Reconstruction(orig, candidate, p, want)
	require.NoError(t, err)
	require.True(t, props.EqualContent(want, got.Properties))
}

func TestReconstruction_Rejects(t *testing.T) {
	p := testutil.Parser(t)
	orig := buildRing(t, p, props.Property{ID: 0, Value: 5})
	want := []props.Property{{ID: 0, Value: 5}}

	tests := []struct {
		name     string
		mutate   func(h *item.Header)
		want     []props.Property
		failType string
	}{
		{
			name:     "guid changed",
			mutate:   func(h *item.Header) { h.GUID++ },
			want:     want,
			failType: "Identity",
		},
		{
			name:     "type code changed",
			mutate:   func(h *item.Header) { h.TypeCode = "amu" },
			want:     want,
			failType: "Identity",
		},
		{
			name:     "prefix changed",
			mutate:   func(h *item.Header) { h.Level++ },
			want:     want,
			failType: "Prefix",
		},
		{
			name:     "layout changed",
			mutate:   func(h *item.Header) { h.HasGraphic = true },
			want:     want,
			failType: "Layout",
		},
		{
			name:     "content differs",
			mutate:   func(h *item.Header) {},
			want:     []props.Property{{ID: 0, Value: 6}},
			failType: "Properties",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testutil.RingHeader()
			tt.mutate(h)
			candidate := testutil.Build(t, p, h, want...)

			_, err := verify.Reconstruction(orig, candidate, p, tt.want)
			require.ErrorIs(t, err, verify.ErrReconstructionFailed)

			var verr *verify.ValidationError
			require.True(t, errors.As(err, &verr))
			require.Equal(t, tt.failType, verr.Type)
		})
	}
}

func TestReconstruction_RejectsUnparseable(t *testing.T) {
	p := testutil.Parser(t)
	orig := buildRing(t, p)

	_, err := verify.Reconstruction(orig, []byte("JM\x01"), p, nil)
	require.ErrorIs(t, err, verify.ErrReconstructionFailed)
	require.Contains(t, err.Error(), "Reparse")
}

func TestReconstruction_SuffixChecked(t *testing.T) {
	p := testutil.Parser(t)
	origRec, err := p.Build(testutil.RunewordHeader(), nil, []props.Property{{ID: 93, Value: 20}})
	require.NoError(t, err)

	candidate, err := p.Build(testutil.RunewordHeader(), nil, []props.Property{{ID: 93, Value: 21}})
	require.NoError(t, err)

	_, err = verify.Reconstruction(origRec, item.Write(candidate), p, nil)
	require.ErrorIs(t, err, verify.ErrReconstructionFailed)
	var verr *verify.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "Suffix", verr.Type)
}

func TestFingerprint(t *testing.T) {
	a := testutil.Bits(t, "1011 0010 1")
	b := testutil.Bits(t, "1011 0010 1")
	c := testutil.Bits(t, "1011 0010 0")

	fa, err := verify.Fingerprint(a, 0, a.Len())
	require.NoError(t, err)
	fb, err := verify.Fingerprint(b, 0, b.Len())
	require.NoError(t, err)
	fc, err := verify.Fingerprint(c, 0, c.Len())
	require.NoError(t, err)
	require.Equal(t, fa, fb)
	require.NotEqual(t, fa, fc)

	// Trailing zero bits are part of the length, not just the bytes.
	short, err := verify.Fingerprint(c, 0, 8)
	require.NoError(t, err)
	long, err := verify.Fingerprint(c, 0, 9)
	require.NoError(t, err)
	require.NotEqual(t, short, long)

	_, err = verify.Fingerprint(a, 4, 20)
	require.Error(t, err)
}

func TestRecord(t *testing.T) {
	p := testutil.Parser(t)
	rec := buildRing(t, p, props.Property{ID: 7, Value: 20})
	require.NoError(t, verify.Record(rec, p))

	ear, err := p.Build(&item.Header{Flags: item.Flags{Ear: true}, Ear: &item.Ear{Name: "Bishibosh"}}, nil, nil)
	require.NoError(t, err)
	require.NoError(t, verify.Record(ear, p))
}

func TestRecord_DetectsBadPadding(t *testing.T) {
	p := testutil.Parser(t)
	rec := buildRing(t, p)

	unaligned := rec.Clone()
	unaligned.Bits.AppendBool(false)
	err := verify.Record(unaligned, p)
	require.ErrorIs(t, err, verify.ErrInvalidRecord)
	require.Contains(t, err.Error(), "Alignment")

	trailing := rec.Clone()
	require.NoError(t, trailing.Bits.Append(0xFF, 8))
	err = verify.Record(trailing, p)
	require.ErrorIs(t, err, verify.ErrInvalidRecord)
	require.Contains(t, err.Error(), "Padding")
}
