package item

import "github.com/joshuapare/d2ikit/internal/format"

// Write serializes rec as "JM" followed by its body bytes. A body whose length
// is not a multiple of eight is padded with zero bits.
func Write(rec *Record) []byte {
	return format.JoinSignature(rec.Bits.Bytes())
}
