package props

import (
	"bytes"
	_ "embed"
)

//go:embed data/props.tsv
var defaultTSV []byte

// Default returns a fresh table built from the definitions shipped with the
// module. Callers that edit real saves should load the game's own table.
func Default() (*Table, error) {
	return LoadTSV(bytes.NewReader(defaultTSV))
}
