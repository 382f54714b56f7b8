package bitstream

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/joshuapare/d2ikit/internal/buf"
	"github.com/joshuapare/d2ikit/internal/format"
)

// Sequence is a packed bit sequence indexed by read position.
//
// Invariant: len(buf) == ceil(n/8) and the unused high bits of the last byte
// are zero, so two sequences with equal content have equal buffers.
type Sequence struct {
	buf []byte
	n   int
}

// New returns an empty sequence with room for capBits bits.
func New(capBits int) *Sequence {
	if capBits < 0 {
		capBits = 0
	}
	return &Sequence{buf: make([]byte, 0, format.AlignBits(capBits)/format.BitsPerByte)}
}

// FromBytes returns a sequence holding every bit of b. The bytes are copied.
func FromBytes(b []byte) *Sequence {
	return &Sequence{buf: bytes.Clone(b), n: len(b) * format.BitsPerByte}
}

// Parse builds a sequence from a string of '0' and '1' characters in read
// order. Spaces, underscores and newlines are ignored so test vectors can be
// grouped by field.
func Parse(s string) (*Sequence, error) {
	seq := New(len(s))
	for i, c := range s {
		switch c {
		case '0':
			seq.appendBit(0)
		case '1':
			seq.appendBit(1)
		case ' ', '_', '\n', '\t':
		default:
			return nil, fmt.Errorf("bitstream: invalid character %q at %d", c, i)
		}
	}
	return seq, nil
}

// Len returns the number of bits in the sequence.
func (s *Sequence) Len() int { return s.n }

// Aligned reports whether the length is a multiple of eight.
func (s *Sequence) Aligned() bool { return s.n&format.ByteAlignMask == 0 }

// Bytes returns a copy of the packed bytes. A partial final byte is padded
// with zero high bits.
func (s *Sequence) Bytes() []byte { return bytes.Clone(s.buf) }

// Clone returns an independent copy.
func (s *Sequence) Clone() *Sequence {
	return &Sequence{buf: bytes.Clone(s.buf), n: s.n}
}

// Equal reports whether both sequences hold the same bits.
func (s *Sequence) Equal(o *Sequence) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.n == o.n && bytes.Equal(s.buf, o.buf)
}

// Uint reads n bits starting at off without moving any cursor.
func (s *Sequence) Uint(off, n int) (uint64, error) {
	if n < 0 || n > format.MaxFieldBits {
		return 0, fmt.Errorf("%w: %d bits", ErrFieldWidth, n)
	}
	if _, err := buf.CheckRange(s.n, off, n); err != nil {
		return 0, fmt.Errorf("%w: %d bits at %d: %v", ErrOutOfRange, n, off, err)
	}
	return s.uintAt(off, n), nil
}

// uintAt reads without bounds checks; callers validate the range.
func (s *Sequence) uintAt(off, n int) uint64 {
	var v uint64
	for i := 0; i < n; {
		p := off + i
		shift := p & format.ByteAlignMask
		take := format.BitsPerByte - shift
		if take > n-i {
			take = n - i
		}
		chunk := uint64(s.buf[p>>3]>>shift) & (1<<take - 1)
		v |= chunk << i
		i += take
	}
	return v
}

// Append writes the low n bits of v at the end, least significant bit first.
// v must fit in n bits.
func (s *Sequence) Append(v uint64, n int) error {
	if n < 0 || n > format.MaxFieldBits {
		return fmt.Errorf("%w: %d bits", ErrFieldWidth, n)
	}
	if n < format.MaxFieldBits && v>>n != 0 {
		return fmt.Errorf("%w: %d in %d bits", ErrFieldWidth, v, n)
	}
	s.appendUint(v, n)
	return nil
}

// AppendBool writes a single bit.
func (s *Sequence) AppendBool(b bool) {
	if b {
		s.appendBit(1)
		return
	}
	s.appendBit(0)
}

// AppendSequence writes every bit of o at the end.
func (s *Sequence) AppendSequence(o *Sequence) {
	s.appendRange(o, 0, o.n)
}

func (s *Sequence) appendBit(b uint64) {
	s.appendUint(b&1, 1)
}

func (s *Sequence) appendUint(v uint64, n int) {
	need := format.AlignBits(s.n+n) / format.BitsPerByte
	for len(s.buf) < need {
		s.buf = append(s.buf, 0)
	}
	for i := 0; i < n; {
		p := s.n
		shift := p & format.ByteAlignMask
		take := format.BitsPerByte - shift
		if take > n-i {
			take = n - i
		}
		s.buf[p>>3] |= byte((v>>i)&(1<<take-1)) << shift
		s.n += take
		i += take
	}
}

func (s *Sequence) appendRange(src *Sequence, from, to int) {
	for p := from; p < to; {
		n := to - p
		if n > format.MaxFieldBits {
			n = format.MaxFieldBits
		}
		s.appendUint(src.uintAt(p, n), n)
		p += n
	}
}

// Slice returns a copy of the bits in [from, to).
func (s *Sequence) Slice(from, to int) (*Sequence, error) {
	if to < from {
		return nil, fmt.Errorf("%w: slice [%d, %d)", ErrOutOfRange, from, to)
	}
	if _, err := buf.CheckRange(s.n, from, to-from); err != nil {
		return nil, fmt.Errorf("%w: slice [%d, %d): %v", ErrOutOfRange, from, to, err)
	}
	out := New(to - from)
	out.appendRange(s, from, to)
	return out, nil
}

// Insert splices bits at off, shifting everything at or after off outward.
// The result is not byte aligned.
func (s *Sequence) Insert(off int, bits *Sequence) error {
	if off < 0 || off > s.n {
		return fmt.Errorf("%w: insert at %d of %d", ErrOutOfRange, off, s.n)
	}
	out := New(s.n + bits.n)
	out.appendRange(s, 0, off)
	out.appendRange(bits, 0, bits.n)
	out.appendRange(s, off, s.n)
	*s = *out
	return nil
}

// Remove deletes n bits starting at off, shifting the tail inward.
func (s *Sequence) Remove(off, n int) error {
	if _, err := buf.CheckRange(s.n, off, n); err != nil {
		return fmt.Errorf("%w: remove %d bits at %d: %v", ErrOutOfRange, n, off, err)
	}
	out := New(s.n - n)
	out.appendRange(s, 0, off)
	out.appendRange(s, off+n, s.n)
	*s = *out
	return nil
}

// ByteAlign pads with zero bits until the length is a multiple of eight and
// returns the number of bits added. Calling it on an aligned sequence is a no-op.
func (s *Sequence) ByteAlign() int {
	pad := format.PadBits(s.n)
	// The unused high bits are already zero and already allocated.
	s.n += pad
	return pad
}

// String renders the bits in read order.
func (s *Sequence) String() string {
	var sb strings.Builder
	sb.Grow(s.n)
	for p := 0; p < s.n; p++ {
		sb.WriteByte('0' + byte(s.uintAt(p, 1)))
	}
	return sb.String()
}

// BitString renders the bits highest offset first: each byte MSB-first with
// the last byte leftmost. This is the textual form used by capture tools.
func (s *Sequence) BitString() string {
	var sb strings.Builder
	sb.Grow(s.n)
	for p := s.n - 1; p >= 0; p-- {
		sb.WriteByte('0' + byte(s.uintAt(p, 1)))
	}
	return sb.String()
}
