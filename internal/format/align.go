package format

// AlignBits returns n aligned up to the next byte boundary, in bits.
//
// Example:
//
//	AlignBits(0)  = 0
//	AlignBits(1)  = 8
//	AlignBits(8)  = 8
//	AlignBits(9)  = 16
func AlignBits(n int) int {
	return (n + ByteAlignMask) & ^ByteAlignMask
}

// PadBits returns how many zero bits are needed to byte-align n.
func PadBits(n int) int {
	return AlignBits(n) - n
}
