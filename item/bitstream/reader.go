package bitstream

import (
	"fmt"

	"github.com/joshuapare/d2ikit/internal/buf"
	"github.com/joshuapare/d2ikit/internal/format"
)

// Reader is a cursor over a Sequence.
type Reader struct {
	seq *Sequence
	pos int
}

// NewReader returns a reader positioned at bit 0 of s.
func NewReader(s *Sequence) *Reader {
	return &Reader{seq: s}
}

// ReadBits consumes n bits (n <= 64) and returns them as an unsigned value.
func (r *Reader) ReadBits(n int) (uint64, error) {
	if n < 0 || n > format.MaxFieldBits {
		return 0, fmt.Errorf("%w: %d bits", ErrFieldWidth, n)
	}
	if err := r.check(n); err != nil {
		return 0, err
	}
	v := r.seq.uintAt(r.pos, n)
	r.pos += n
	return v, nil
}

// ReadBool consumes a single bit.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadBits(1)
	return v == 1, err
}

// Skip advances the cursor by n bits without materializing them.
func (r *Reader) Skip(n int) error {
	if err := r.check(n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

// Seek moves the cursor to an absolute position. Seeking to Len is allowed.
func (r *Reader) Seek(pos int) error {
	if pos < 0 || pos > r.seq.n {
		return fmt.Errorf("%w: seek to %d of %d", ErrOutOfRange, pos, r.seq.n)
	}
	r.pos = pos
	return nil
}

// Position returns the number of bits consumed from the start of the body.
func (r *Reader) Position() int { return r.pos }

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int { return r.seq.n - r.pos }

func (r *Reader) check(n int) error {
	if _, err := buf.CheckRange(r.seq.n, r.pos, n); err != nil {
		return fmt.Errorf("%w: %d bits at %d: %v", ErrOutOfRange, n, r.pos, err)
	}
	return nil
}
