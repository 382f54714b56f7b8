// Package printer renders item records as text or JSON.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/d2ikit/item"
	"github.com/joshuapare/d2ikit/item/props"
)

const DefaultIndentSize = 2

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// ShowHeader includes placement, flags and extended fields.
	// Default: true
	ShowHeader bool

	// ShowOffsets includes the bit offset of each property.
	// Default: false
	ShowOffsets bool

	// ShowBits appends the body in capture-tool bit order.
	// Default: false
	ShowBits bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		IndentSize: DefaultIndentSize,
		ShowHeader: true,
	}
}

// Printer handles formatted output of item records.
type Printer struct {
	opts   Options
	writer io.Writer
	table  *props.Table
}

// New creates a Printer. The table supplies property names; ids it does not
// define print as "stat<id>".
func New(t *props.Table, w io.Writer, opts Options) *Printer {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer{opts: opts, writer: w, table: t}
}

// PrintRecord prints one record.
func (p *Printer) PrintRecord(rec *item.Record) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printRecordJSON(rec)
	case FormatText, "":
		return p.printRecordText(rec)
	default:
		return fmt.Errorf("printer: unsupported format %q", p.opts.Format)
	}
}

// PrintDefinitions prints a property table.
func (p *Printer) PrintDefinitions(defs []props.Definition) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printDefinitionsJSON(defs)
	case FormatText, "":
		return p.printDefinitionsText(defs)
	default:
		return fmt.Errorf("printer: unsupported format %q", p.opts.Format)
	}
}

func (p *Printer) name(id uint16) string {
	if p.table != nil {
		if def, ok := p.table.Lookup(id); ok && def.Name != "" {
			return def.Name
		}
	}
	return fmt.Sprintf("stat%d", id)
}

func (p *Printer) hasParam(pr props.Property) bool {
	if p.table != nil {
		if def, ok := p.table.Lookup(pr.ID); ok {
			return def.ParamBits > 0
		}
	}
	return pr.Param != 0
}
