// Package item parses and writes single item records: a two-byte "JM"
// signature followed by a bit-packed body.
//
// # Overview
//
// The body is read through a bitstream.Reader. The Walker consumes every field
// that precedes the property list, guided by the item's flag bits and the
// item-base table, and reports where the list starts. The Parser then decodes
// the sentinel-terminated property list (and the runeword list, when present)
// with a props.Codec.
//
//	parser := item.NewParser(propTable, baseTable)
//	rec, err := parser.Parse(data)
//	...
//	out := item.Write(rec)
//
// # Record Layout
//
//	[0, PropertiesStart)              header, preserved verbatim by edits
//	[PropertiesStart, PropertiesEnd)  property list including its sentinel
//	[PropertiesEnd, BodyEnd)          runeword list and anything after
//	[BodyEnd, Len)                    zero padding to the byte boundary
//
// Record.Bits is the source of truth; Properties is a decoded view of it and
// is only rebuilt by parsing. Offsets stored on decoded properties refer to
// the Bits of the record they came from.
//
// # Error Handling
//
// Short reads inside the header are ErrCorruptHeader wrapping
// bitstream.ErrOutOfRange, annotated with the field name and bit position.
// The walker never guesses a missing base or stat width.
//
// # Related Packages
//
//   - github.com/joshuapare/d2ikit/item/bitstream: bit sequence and reader
//   - github.com/joshuapare/d2ikit/item/props: property definitions and codec
//   - github.com/joshuapare/d2ikit/item/itembase: item-base table
//   - github.com/joshuapare/d2ikit/item/edit: property reconstruction engine
package item
