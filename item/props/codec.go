package props

import (
	"fmt"

	"github.com/joshuapare/d2ikit/internal/format"
	"github.com/joshuapare/d2ikit/item/bitstream"
)

// Codec encodes and decodes single property entries against a Table.
type Codec struct {
	table *Table
}

// NewCodec returns a codec bound to t.
func NewCodec(t *Table) *Codec {
	return &Codec{table: t}
}

// Table returns the definitions the codec resolves ids against.
func (c *Codec) Table() *Table { return c.table }

// Check validates p against its definition without encoding it.
func (c *Codec) Check(p Property) (Definition, error) {
	def, err := c.table.Require(p.ID)
	if err != nil {
		return Definition{}, err
	}
	if err := def.CheckValue(p.Value); err != nil {
		return Definition{}, err
	}
	if def.ParamBits == 0 {
		if p.Param != 0 {
			return Definition{}, &RangeError{ID: p.ID, Field: "param", Value: int64(p.Param)}
		}
	} else if err := def.CheckParam(p.Param); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// Decode reads one entry at the reader's cursor.
//
// When the id is the sentinel the returned property has ID SentinelID and no
// payload is consumed. The second result is the number of bits consumed.
func (c *Codec) Decode(r *bitstream.Reader) (Property, int, error) {
	start := r.Position()
	raw, err := r.ReadBits(format.PropertyIDBits)
	if err != nil {
		return Property{}, 0, fmt.Errorf("props: id at bit %d: %w", start, err)
	}
	id := uint16(raw)
	if id == SentinelID {
		return Property{ID: id, Offset: start}, format.PropertyIDBits, nil
	}
	def, ok := c.table.Lookup(id)
	if !ok {
		return Property{}, 0, fmt.Errorf("at bit %d: %w", start, &UnknownPropertyError{ID: id})
	}
	p := Property{ID: id, Offset: start}
	if def.ParamBits > 0 {
		param, err := r.ReadBits(def.ParamBits)
		if err != nil {
			return Property{}, 0, fmt.Errorf("props: property %d param at bit %d: %w", id, r.Position(), err)
		}
		p.Param = uint32(param)
	}
	stored, err := r.ReadBits(def.ValueBits)
	if err != nil {
		return Property{}, 0, fmt.Errorf("props: property %d value at bit %d: %w", id, r.Position(), err)
	}
	p.Value = int64(stored) - def.AddBias
	return p, r.Position() - start, nil
}

// DecodeList reads entries until the sentinel has been consumed. The sentinel
// is not part of the returned list.
func (c *Codec) DecodeList(r *bitstream.Reader) ([]Property, error) {
	var out []Property
	for {
		p, _, err := c.Decode(r)
		if err != nil {
			return nil, err
		}
		if p.IsSentinel() {
			return out, nil
		}
		out = append(out, p)
	}
}

// Encode returns id ++ param ++ (value+AddBias) for p.
func (c *Codec) Encode(p Property) (*bitstream.Sequence, error) {
	seq := bitstream.New(format.PropertyIDBits + format.MaxParamBits + format.MaxValueBits)
	if err := c.EncodeTo(seq, p); err != nil {
		return nil, err
	}
	return seq, nil
}

// EncodeTo appends the encoding of p to dst. dst is untouched on error.
func (c *Codec) EncodeTo(dst *bitstream.Sequence, p Property) error {
	def, err := c.Check(p)
	if err != nil {
		return err
	}
	tmp := bitstream.New(def.Width())
	if err := tmp.Append(uint64(p.ID), format.PropertyIDBits); err != nil {
		return fmt.Errorf("props: property %d id: %w", p.ID, err)
	}
	if def.ParamBits > 0 {
		if err := tmp.Append(uint64(p.Param), def.ParamBits); err != nil {
			return fmt.Errorf("props: property %d param: %w", p.ID, err)
		}
	}
	if err := tmp.Append(uint64(p.Value+def.AddBias), def.ValueBits); err != nil {
		return fmt.Errorf("props: property %d value: %w", p.ID, err)
	}
	dst.AppendSequence(tmp)
	return nil
}

// EncodeSentinel returns the nine set bits that terminate a list.
func (c *Codec) EncodeSentinel() *bitstream.Sequence {
	seq := bitstream.New(format.PropertyIDBits)
	// SentinelID always fits PropertyIDBits.
	_ = seq.Append(uint64(SentinelID), format.PropertyIDBits)
	return seq
}

// EncodeList encodes ps in the order given and appends the sentinel.
func (c *Codec) EncodeList(ps []Property) (*bitstream.Sequence, error) {
	seq := bitstream.New(len(ps)*format.PropertyIDBits + format.PropertyIDBits)
	for i, p := range ps {
		if err := c.EncodeTo(seq, p); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	seq.AppendSequence(c.EncodeSentinel())
	return seq, nil
}
