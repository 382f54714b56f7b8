// Package props defines item property definitions and the codec for a single
// property entry.
//
// # Wire Format
//
// A property list is a run of entries with no byte alignment:
//
//	id (9 bits) [param (ParamBits)] stored (ValueBits)
//
// terminated by the sentinel id 511 with no payload. The stored value is the
// logical value plus the definition's AddBias, so stored fields are always
// unsigned.
//
// # Definitions
//
// A Table is built once from an external source (see LoadTSV) and is
// read-only afterwards. Codecs receive the table explicitly; there is no
// package-level registry.
//
// # Error Handling
//
// Unknown ids return an *UnknownPropertyError matching ErrUnknownProperty.
// Values or params that do not fit their widths return a *RangeError matching
// ErrValueOutOfRange. Encoding never clamps.
package props
