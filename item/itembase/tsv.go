package itembase

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LoadTSV reads bases from a tab-separated file with columns code, name,
// types (comma separated) and stackable. Lines starting with '#' are skipped,
// as is a header row whose first column is "code".
func LoadTSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var bases []Base
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("itembase: tsv: %w", err)
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "code") {
			continue
		}
		if len(rec) < 3 {
			return nil, fmt.Errorf("%w: tsv line %d: %d columns, want at least 3", ErrInvalidBase, line, len(rec))
		}
		b := Base{
			Code:  rec[0],
			Name:  strings.TrimSpace(rec[1]),
			Types: SplitTypes(rec[2]),
		}
		if len(rec) > 3 {
			b.Stackable = ParseStackable(rec[3])
		}
		bases = append(bases, b)
	}
	return NewTable(bases)
}
