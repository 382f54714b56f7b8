package edit

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/joshuapare/d2ikit/internal/format"
	"github.com/joshuapare/d2ikit/item"
	"github.com/joshuapare/d2ikit/item/bitstream"
	"github.com/joshuapare/d2ikit/item/props"
	"github.com/joshuapare/d2ikit/item/verify"
)

// Options configures an Engine.
type Options struct {
	// Logger receives debug traces of each Apply. Nil discards.
	Logger *slog.Logger
}

// Engine applies property deltas to records. It holds only immutable tables
// and may be shared between goroutines; each record must be owned by one
// caller at a time.
type Engine struct {
	parser *item.Parser
	codec  *props.Codec
	log    *slog.Logger
}

// NewEngine returns an engine that decodes and verifies with p.
func NewEngine(p *item.Parser, opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{parser: p, codec: p.Codec(), log: log}
}

// span locates the property section within a record's bits.
type span struct {
	start    int
	end      int
	bodyEnd  int
	existing []props.Property
}

// Apply returns a new record with d applied to rec's property list.
// rec is not modified, on success or on failure.
func (e *Engine) Apply(rec *item.Record, d Delta) (*item.Record, error) {
	if !rec.HasProperties() {
		return nil, ErrNoPropertySection
	}
	sp, err := e.locate(rec)
	if err != nil {
		return nil, err
	}
	merged, err := merge(e.codec, sp.existing, d)
	if err != nil {
		return nil, err
	}
	list, err := e.codec.EncodeList(merged)
	if err != nil {
		return nil, err
	}

	candidate, err := splice(rec.Bits, sp, list)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReconstructionFailed, err)
	}

	base := rec.Clone()
	base.PropertiesStart = sp.start
	base.PropertiesEnd = sp.end
	base.BodyEnd = sp.bodyEnd
	base.Properties = sp.existing

	out, err := verify.Reconstruction(base, format.JoinSignature(candidate.Bytes()), e.parser, merged)
	if err != nil {
		e.log.Debug("reconstruction rejected", "type", rec.TypeCode, "guid", rec.GUID, "err", err)
		return nil, err
	}
	e.log.Debug("properties rebuilt",
		"type", rec.TypeCode,
		"guid", rec.GUID,
		"added", len(d.Add),
		"removed", len(d.Remove),
		"changed", len(d.Change),
		"bits_before", sp.end-sp.start,
		"bits_after", list.Len(),
	)
	return out, nil
}

// Add appends ps to rec's property list.
func (e *Engine) Add(rec *item.Record, ps ...props.Property) (*item.Record, error) {
	return e.Apply(rec, Delta{Add: ps})
}

// Remove drops every instance of each id.
func (e *Engine) Remove(rec *item.Record, ids ...uint16) (*item.Record, error) {
	return e.Apply(rec, Delta{Remove: ids})
}

// Set overwrites the value of the first instance of id.
func (e *Engine) Set(rec *item.Record, id uint16, value int64) (*item.Record, error) {
	for _, p := range rec.Properties {
		if p.ID == id {
			return e.Apply(rec, Delta{Change: []Change{{ID: id, Value: value, Param: p.Param}}})
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrPropertyNotFound, id)
}

// locate finds the property section by decoding the record's own bits.
// The walker's start is used when known; otherwise the offset of the first
// decoded property is accepted once the id stored there matches.
func (e *Engine) locate(rec *item.Record) (span, error) {
	start := rec.PropertiesStart
	if start < 0 {
		if len(rec.Properties) == 0 {
			return span{}, ErrNoPropertySection
		}
		first := rec.Properties[0]
		id, err := rec.Bits.Uint(first.Offset, format.PropertyIDBits)
		if err != nil || uint16(id) != first.ID {
			return span{}, fmt.Errorf("%w: id %d at bit %d", ErrStaleOffset, first.ID, first.Offset)
		}
		start = first.Offset
	}

	r := bitstream.NewReader(rec.Bits)
	if err := r.Seek(start); err != nil {
		return span{}, fmt.Errorf("%w: %w", ErrStaleOffset, err)
	}
	existing, err := e.codec.DecodeList(r)
	if err != nil {
		return span{}, fmt.Errorf("decode existing properties: %w", err)
	}
	sp := span{start: start, end: r.Position(), existing: existing}

	if rec.Flags.Runeword && rec.Extended() {
		if _, err := e.codec.DecodeList(r); err != nil {
			return span{}, fmt.Errorf("decode runeword properties: %w", err)
		}
	}
	sp.bodyEnd = r.Position()

	if trailing := rec.Bits.Len() - sp.bodyEnd; trailing >= format.BitsPerByte {
		return span{}, fmt.Errorf("%w: %d bits", ErrTrailingData, trailing)
	}
	return sp, nil
}

// splice returns prefix ++ list ++ suffix, byte aligned.
func splice(bits *bitstream.Sequence, sp span, list *bitstream.Sequence) (*bitstream.Sequence, error) {
	prefix, err := bits.Slice(0, sp.start)
	if err != nil {
		return nil, err
	}
	suffix, err := bits.Slice(sp.end, sp.bodyEnd)
	if err != nil {
		return nil, err
	}
	out := bitstream.New(prefix.Len() + list.Len() + suffix.Len() + format.BitsPerByte)
	out.AppendSequence(prefix)
	out.AppendSequence(list)
	out.AppendSequence(suffix)
	out.ByteAlign()
	return out, nil
}
