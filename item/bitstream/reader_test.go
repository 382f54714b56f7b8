package bitstream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReader_ReadBoolAndSkip(t *testing.T) {
	r := NewReader(mustParse(t, "1 000 1 11"))

	b, err := r.ReadBool()
	require.NoError(t, err)
	require.True(t, b)

	require.NoError(t, r.Skip(3))
	b, err = r.ReadBool()
	require.NoError(t, err)
	require.True(t, b)

	v, err := r.ReadBits(2)
	require.NoError(t, err)
	require.Equal(t, uint64(3), v)
	require.Equal(t, 0, r.Remaining())
}

func TestReader_OutOfRangeDoesNotAdvance(t *testing.T) {
	r := NewReader(mustParse(t, "101"))
	require.NoError(t, r.Skip(1))

	_, err := r.ReadBits(3)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.Equal(t, 1, r.Position())

	require.ErrorIs(t, r.Skip(5), ErrOutOfRange)
	require.Equal(t, 1, r.Position())

	_, err = r.ReadBits(65)
	require.ErrorIs(t, err, ErrFieldWidth)
}

func TestReader_Seek(t *testing.T) {
	seq := mustParse(t, "0000 1111")
	r := NewReader(seq)
	require.NoError(t, r.Seek(4))
	v, err := r.ReadBits(4)
	require.NoError(t, err)
	require.Equal(t, uint64(0xF), v)

	require.NoError(t, r.Seek(seq.Len()))
	require.ErrorIs(t, r.Seek(9), ErrOutOfRange)
	require.ErrorIs(t, r.Seek(-1), ErrOutOfRange)
}

func TestReader_ZeroWidthRead(t *testing.T) {
	r := NewReader(New(0))
	v, err := r.ReadBits(0)
	require.NoError(t, err)
	require.Zero(t, v)
}
