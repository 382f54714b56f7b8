package printer

import (
	"encoding/json"

	"github.com/joshuapare/d2ikit/item"
	"github.com/joshuapare/d2ikit/item/props"
)

// jsonRecord represents an item record in JSON format.
type jsonRecord struct {
	TypeCode           string         `json:"type_code,omitempty"`
	Extended           bool           `json:"extended"`
	Quality            string         `json:"quality,omitempty"`
	Level              uint8          `json:"level,omitempty"`
	GUID               uint32         `json:"guid,omitempty"`
	Ear                *item.Ear      `json:"ear,omitempty"`
	Header             *jsonHeader    `json:"header,omitempty"`
	PropertiesStart    int            `json:"properties_start"`
	PropertiesEnd      int            `json:"properties_end"`
	Properties         []jsonProperty `json:"properties"`
	RunewordProperties []jsonProperty `json:"runeword_properties,omitempty"`
	Bits               string         `json:"bits,omitempty"`
}

type jsonHeader struct {
	Version          uint8          `json:"version"`
	Placement        item.Placement `json:"placement"`
	Flags            []string       `json:"flags"`
	PersonalizedName string         `json:"personalized_name,omitempty"`
	RunewordCode     uint16         `json:"runeword_code,omitempty"`
	Defense          *int64         `json:"defense,omitempty"`
	MaxDurability    *int64         `json:"max_durability,omitempty"`
	Durability       *int64         `json:"durability,omitempty"`
	Quantity         *uint16        `json:"quantity,omitempty"`
	SocketCount      *uint8         `json:"socket_count,omitempty"`
}

// jsonProperty represents one property instance in JSON format.
type jsonProperty struct {
	ID     uint16  `json:"id"`
	Name   string  `json:"name"`
	Value  int64   `json:"value"`
	Param  *uint32 `json:"param,omitempty"`
	Offset *int    `json:"offset,omitempty"`
}

type jsonDefinition struct {
	ID         uint16 `json:"id"`
	Name       string `json:"name"`
	AddBias    int64  `json:"add"`
	ValueBits  int    `json:"bits"`
	ParamBits  int    `json:"param_bits"`
	Repeatable bool   `json:"repeatable"`
}

func (p *Printer) printRecordJSON(rec *item.Record) error {
	out := jsonRecord{
		TypeCode:        rec.TypeCode,
		Extended:        rec.Extended(),
		Ear:             rec.Ear,
		PropertiesStart: rec.PropertiesStart,
		PropertiesEnd:   rec.PropertiesEnd,
		Properties:      p.jsonProperties(rec.Properties),
	}
	if rec.Extended() {
		out.Quality = rec.Quality.String()
		out.Level = rec.Level
		out.GUID = rec.GUID
	}
	if len(rec.RunewordProperties) > 0 {
		out.RunewordProperties = p.jsonProperties(rec.RunewordProperties)
	}
	if p.opts.ShowHeader {
		h := &jsonHeader{
			Version:          rec.Version,
			Placement:        rec.Placement,
			Flags:            flagNames(rec.Flags),
			PersonalizedName: rec.PersonalizedName,
			RunewordCode:     rec.RunewordCode,
		}
		if rec.HasDefense {
			h.Defense = &rec.Defense
		}
		if rec.HasDurability {
			h.MaxDurability = &rec.MaxDurability
			h.Durability = &rec.Durability
		}
		if rec.HasQuantity {
			h.Quantity = &rec.Quantity
		}
		if rec.HasSocketCount {
			h.SocketCount = &rec.SocketCount
		}
		out.Header = h
	}
	if p.opts.ShowBits {
		out.Bits = rec.Bits.BitString()
	}
	return p.encode(out)
}

func (p *Printer) jsonProperties(ps []props.Property) []jsonProperty {
	out := make([]jsonProperty, 0, len(ps))
	for _, pr := range ps {
		jp := jsonProperty{ID: pr.ID, Name: p.name(pr.ID), Value: pr.Value}
		if p.hasParam(pr) {
			param := pr.Param
			jp.Param = &param
		}
		if p.opts.ShowOffsets {
			off := pr.Offset
			jp.Offset = &off
		}
		out = append(out, jp)
	}
	return out
}

func (p *Printer) printDefinitionsJSON(defs []props.Definition) error {
	out := make([]jsonDefinition, 0, len(defs))
	for _, d := range defs {
		out = append(out, jsonDefinition{
			ID:         d.ID,
			Name:       d.Name,
			AddBias:    d.AddBias,
			ValueBits:  d.ValueBits,
			ParamBits:  d.ParamBits,
			Repeatable: d.Repeatable,
		})
	}
	return p.encode(out)
}

func (p *Printer) encode(v any) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
