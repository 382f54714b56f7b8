package verify

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/joshuapare/d2ikit/internal/format"
	"github.com/joshuapare/d2ikit/item"
	"github.com/joshuapare/d2ikit/item/bitstream"
	"github.com/joshuapare/d2ikit/item/props"
)

var (
	// ErrReconstructionFailed indicates a candidate record did not survive
	// re-parsing with its identity, layout and content intact.
	ErrReconstructionFailed = errors.New("verify: reconstruction failed")

	// ErrInvalidRecord indicates a record violates a standalone invariant.
	ErrInvalidRecord = errors.New("verify: invalid record")
)

// ValidationError describes one failed check.
type ValidationError struct {
	Type    string
	Message string
	Offset  int
	Details map[string]any
}

func (e *ValidationError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at bit %d: %s", e.Type, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func failed(sentinel error, verr *ValidationError) error {
	return fmt.Errorf("%w: %w", sentinel, verr)
}

// Fingerprint hashes the bits [from, to) of seq.
func Fingerprint(seq *bitstream.Sequence, from, to int) (uint64, error) {
	part, err := seq.Slice(from, to)
	if err != nil {
		return 0, err
	}
	d := xxhash.New()
	_, _ = fmt.Fprintf(d, "%d:", part.Len())
	_, _ = d.Write(part.Bytes())
	return d.Sum64(), nil
}

// Reconstruction parses candidate and checks it against orig and the
// intended property list. On success it returns the parsed candidate.
func Reconstruction(orig *item.Record, candidate []byte, p *item.Parser, want []props.Property) (*item.Record, error) {
	got, err := p.Parse(candidate)
	if err != nil {
		return nil, failed(ErrReconstructionFailed, &ValidationError{
			Type:    "Reparse",
			Message: err.Error(),
			Offset:  -1,
		})
	}
	if err := identity(orig, got); err != nil {
		return nil, failed(ErrReconstructionFailed, err)
	}
	if got.PropertiesStart != orig.PropertiesStart {
		return nil, failed(ErrReconstructionFailed, &ValidationError{
			Type:    "Layout",
			Message: fmt.Sprintf("property list moved from bit %d to %d", orig.PropertiesStart, got.PropertiesStart),
			Offset:  got.PropertiesStart,
		})
	}
	if err := sameBits("Prefix", orig.Bits, 0, orig.PropertiesStart, got.Bits, 0, got.PropertiesStart); err != nil {
		return nil, failed(ErrReconstructionFailed, err)
	}
	if err := sameBits("Suffix", orig.Bits, orig.PropertiesEnd, orig.BodyEnd, got.Bits, got.PropertiesEnd, got.BodyEnd); err != nil {
		return nil, failed(ErrReconstructionFailed, err)
	}
	if !props.EqualContent(got.Properties, want) {
		return nil, failed(ErrReconstructionFailed, &ValidationError{
			Type:    "Properties",
			Message: fmt.Sprintf("decoded %d properties, want %d with equal content", len(got.Properties), len(want)),
			Offset:  got.PropertiesStart,
		})
	}
	if err := padding(got); err != nil {
		return nil, failed(ErrReconstructionFailed, err)
	}
	return got, nil
}

func identity(orig, got *item.Record) *ValidationError {
	if got.TypeCode != orig.TypeCode {
		return &ValidationError{
			Type:    "Identity",
			Message: fmt.Sprintf("type code changed from %q to %q", orig.TypeCode, got.TypeCode),
			Offset:  -1,
		}
	}
	if orig.Extended() && got.GUID != orig.GUID {
		return &ValidationError{
			Type:    "Identity",
			Message: fmt.Sprintf("guid changed from %08X to %08X", orig.GUID, got.GUID),
			Offset:  -1,
		}
	}
	return nil
}

func sameBits(kind string, a *bitstream.Sequence, aFrom, aTo int, b *bitstream.Sequence, bFrom, bTo int) *ValidationError {
	if aTo-aFrom != bTo-bFrom {
		return &ValidationError{
			Type:    kind,
			Message: fmt.Sprintf("length changed from %d to %d bits", aTo-aFrom, bTo-bFrom),
			Offset:  bFrom,
		}
	}
	fa, err := Fingerprint(a, aFrom, aTo)
	if err != nil {
		return &ValidationError{Type: kind, Message: err.Error(), Offset: aFrom}
	}
	fb, err := Fingerprint(b, bFrom, bTo)
	if err != nil {
		return &ValidationError{Type: kind, Message: err.Error(), Offset: bFrom}
	}
	if fa != fb {
		return &ValidationError{
			Type:    kind,
			Message: "bits differ",
			Offset:  bFrom,
			Details: map[string]any{"original": fa, "candidate": fb},
		}
	}
	return nil
}

func padding(rec *item.Record) *ValidationError {
	if !rec.Bits.Aligned() {
		return &ValidationError{
			Type:    "Alignment",
			Message: fmt.Sprintf("%d bits is not a whole number of bytes", rec.Bits.Len()),
			Offset:  rec.Bits.Len(),
		}
	}
	if rec.Trailing() >= format.BitsPerByte {
		return &ValidationError{
			Type:    "Padding",
			Message: fmt.Sprintf("%d bits after the last field", rec.Trailing()),
			Offset:  rec.BodyEnd,
		}
	}
	for pos := rec.BodyEnd; pos < rec.Bits.Len(); pos++ {
		if v, _ := rec.Bits.Uint(pos, 1); v != 0 {
			return &ValidationError{Type: "Padding", Message: "non-zero padding bit", Offset: pos}
		}
	}
	return nil
}

// Record validates the standalone invariants of rec and returns the first
// failure.
func Record(rec *item.Record, p *item.Parser) error {
	if err := padding(rec); err != nil {
		return failed(ErrInvalidRecord, err)
	}
	if rec.HasProperties() {
		if rec.PropertiesStart < 0 || rec.PropertiesEnd-format.PropertyIDBits < rec.PropertiesStart {
			return failed(ErrInvalidRecord, &ValidationError{
				Type:    "Layout",
				Message: fmt.Sprintf("property list [%d, %d) is too short", rec.PropertiesStart, rec.PropertiesEnd),
				Offset:  rec.PropertiesStart,
			})
		}
		at := rec.PropertiesEnd - format.PropertyIDBits
		id, err := rec.Bits.Uint(at, format.PropertyIDBits)
		if err != nil || id != format.SentinelID {
			return failed(ErrInvalidRecord, &ValidationError{
				Type:    "Sentinel",
				Message: fmt.Sprintf("expected sentinel, found id %d", id),
				Offset:  at,
			})
		}
	}
	again, err := p.Parse(item.Write(rec))
	if err != nil {
		return failed(ErrInvalidRecord, &ValidationError{Type: "RoundTrip", Message: err.Error(), Offset: -1})
	}
	if !again.Bits.Equal(rec.Bits) || !props.EqualContent(again.Properties, rec.Properties) {
		return failed(ErrInvalidRecord, &ValidationError{
			Type:    "RoundTrip",
			Message: "re-parsed record differs",
			Offset:  -1,
		})
	}
	return nil
}
