// Package bitstream implements the bit-level buffer underlying an item body.
//
// # Bit Order
//
// Every offset in this package is a read position: bit 0 is the first bit
// consumed after the two-byte container signature. Position p is stored in
// byte p/8 at bit p%8, counting from the least significant bit. A field of
// n bits is read least significant bit first.
//
// This is the same bit sequence the original editing tools describe as "each
// byte prepended MSB-first, read from the high end": reversing that textual
// form yields read order. BitString renders the textual form so dumps can be
// compared against captures taken with those tools.
//
// # Types
//
//   - Sequence: an owned, growable bit sequence with splice operations
//   - Reader: a cursor over a Sequence with bounds-checked reads
//
// # Error Handling
//
// Reads and skips past the end fail with ErrOutOfRange. Appending a value that
// does not fit its declared width fails with ErrFieldWidth; values are never
// truncated.
//
// # Thread Safety
//
// Sequences are not safe for concurrent mutation. A Reader never mutates its
// Sequence, so several Readers may share one Sequence.
package bitstream
