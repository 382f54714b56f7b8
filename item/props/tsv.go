package props

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TSV column order of a property definition file.
const (
	colID = iota
	colName
	colAdd
	colBits
	colParamBits
	colRepeatable // optional
	minColumns = colParamBits + 1
)

// LoadTSV reads definitions from a tab-separated file with columns
// id, name, add, bits, paramBits and an optional repeatable flag. Blank lines
// and lines starting with '#' are skipped, as is a header row whose first
// column is not numeric.
func LoadTSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var defs []Definition
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("props: tsv: %w", err)
		}
		if len(rec) < minColumns {
			if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
				continue
			}
			return nil, fmt.Errorf("%w: tsv line %d: %d columns, want at least %d", ErrInvalidDefinition, line, len(rec), minColumns)
		}
		if line == 1 {
			if _, err := strconv.Atoi(strings.TrimSpace(rec[colID])); err != nil {
				continue // header
			}
		}
		d, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: tsv line %d: %v", ErrInvalidDefinition, line, err)
		}
		defs = append(defs, d)
	}
	return NewTable(defs)
}

func parseRow(rec []string) (Definition, error) {
	field := func(i int) string { return strings.TrimSpace(rec[i]) }

	id, err := strconv.ParseUint(field(colID), 10, 16)
	if err != nil {
		return Definition{}, fmt.Errorf("id: %w", err)
	}
	add, err := strconv.ParseInt(orZero(field(colAdd)), 10, 64)
	if err != nil {
		return Definition{}, fmt.Errorf("add: %w", err)
	}
	bits, err := strconv.Atoi(field(colBits))
	if err != nil {
		return Definition{}, fmt.Errorf("bits: %w", err)
	}
	paramBits, err := strconv.Atoi(orZero(field(colParamBits)))
	if err != nil {
		return Definition{}, fmt.Errorf("paramBits: %w", err)
	}
	d := Definition{
		ID:        uint16(id),
		Name:      field(colName),
		ValueBits: bits,
		ParamBits: paramBits,
		AddBias:   add,
	}
	if len(rec) > colRepeatable {
		switch strings.ToLower(field(colRepeatable)) {
		case "1", "true", "yes", "y":
			d.Repeatable = true
		}
	}
	return d, nil
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
