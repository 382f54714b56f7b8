package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlignBits(t *testing.T) {
	cases := map[int]int{0: 0, 1: 8, 7: 8, 8: 8, 9: 16, 63: 64}
	for in, want := range cases {
		require.Equal(t, want, AlignBits(in), "AlignBits(%d)", in)
		require.Equal(t, want-in, PadBits(in), "PadBits(%d)", in)
	}
}

func TestSentinelIsNineSetBits(t *testing.T) {
	require.Equal(t, 511, SentinelID)
}

func TestSplitSignature(t *testing.T) {
	body, err := SplitSignature([]byte{'J', 'M', 0x10, 0x20})
	require.NoError(t, err)
	require.Equal(t, []byte{0x10, 0x20}, body)

	_, err = SplitSignature([]byte{'J'})
	require.ErrorIs(t, err, ErrTruncated)

	_, err = SplitSignature([]byte{'X', 'M', 0})
	require.ErrorIs(t, err, ErrSignatureMismatch)

	require.Equal(t, []byte{'J', 'M', 1}, JoinSignature([]byte{1}))
}
