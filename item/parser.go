package item

import (
	"fmt"

	"github.com/joshuapare/d2ikit/internal/format"
	"github.com/joshuapare/d2ikit/item/bitstream"
	"github.com/joshuapare/d2ikit/item/itembase"
	"github.com/joshuapare/d2ikit/item/props"
)

// Parser turns record bytes into a Record.
//
// A Parser holds only immutable tables and may be shared between goroutines.
type Parser struct {
	walker *Walker
	codec  *props.Codec
}

// NewParser returns a parser bound to the given definition tables.
func NewParser(pt *props.Table, bt *itembase.Table) *Parser {
	return &Parser{
		walker: NewWalker(pt, bt),
		codec:  props.NewCodec(pt),
	}
}

// Walker returns the header walker used by p.
func (p *Parser) Walker() *Walker { return p.walker }

// Codec returns the property codec used by p.
func (p *Parser) Codec() *props.Codec { return p.codec }

// Parse reads a full record: "JM" followed by the bit-packed body.
func (p *Parser) Parse(data []byte) (*Record, error) {
	body, err := format.SplitSignature(data)
	if err != nil {
		return nil, fmt.Errorf("item: %w", err)
	}
	return p.ParseBits(bitstream.FromBytes(body))
}

// ParseBits parses a body that has already been stripped of its signature.
// The returned record takes ownership of seq.
func (p *Parser) ParseBits(seq *bitstream.Sequence) (*Record, error) {
	r := bitstream.NewReader(seq)
	h, err := p.walker.Walk(r)
	if err != nil {
		return nil, err
	}
	rec := &Record{Header: h, Bits: seq}
	if !h.HasProperties() {
		rec.PropertiesEnd = r.Position()
		rec.BodyEnd = r.Position()
		return rec, nil
	}

	rec.Properties, err = p.codec.DecodeList(r)
	if err != nil {
		return nil, fmt.Errorf("item: properties: %w", err)
	}
	rec.PropertiesEnd = r.Position()

	if h.Flags.Runeword && h.Extended() {
		rec.RunewordProperties, err = p.codec.DecodeList(r)
		if err != nil {
			return nil, fmt.Errorf("item: runeword properties: %w", err)
		}
	}
	rec.BodyEnd = r.Position()
	return rec, nil
}

// Build encodes h and the given lists into a fresh record. The runeword list
// is only written when h is an extended runeword item.
func (p *Parser) Build(h *Header, properties, runeword []props.Property) (*Record, error) {
	seq, err := p.walker.EncodeHeader(h)
	if err != nil {
		return nil, err
	}
	if h.HasProperties() {
		list, err := p.codec.EncodeList(properties)
		if err != nil {
			return nil, fmt.Errorf("item: properties: %w", err)
		}
		seq.AppendSequence(list)
		if h.Flags.Runeword && h.Extended() {
			rw, err := p.codec.EncodeList(runeword)
			if err != nil {
				return nil, fmt.Errorf("item: runeword properties: %w", err)
			}
			seq.AppendSequence(rw)
		}
	}
	seq.ByteAlign()
	return p.ParseBits(seq)
}
