package itembase

import (
	"bytes"
	_ "embed"
)

//go:embed data/items.tsv
var defaultTSV []byte

// Default returns a fresh table built from the bases shipped with the module.
func Default() (*Table, error) {
	return LoadTSV(bytes.NewReader(defaultTSV))
}
