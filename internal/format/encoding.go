package format

import "bytes"

// HasSignature reports whether b starts with the container signature.
func HasSignature(b []byte) bool {
	return len(b) >= SignatureSize && bytes.Equal(b[:SignatureSize], Signature)
}

// SplitSignature validates the container signature and returns the item body.
// The returned slice aliases b.
func SplitSignature(b []byte) ([]byte, error) {
	if len(b) < SignatureSize {
		return nil, ErrTruncated
	}
	if !HasSignature(b) {
		return nil, ErrSignatureMismatch
	}
	return b[SignatureSize:], nil
}

// JoinSignature prepends the container signature to body.
func JoinSignature(body []byte) []byte {
	out := make([]byte, 0, SignatureSize+len(body))
	out = append(out, Signature...)
	return append(out, body...)
}
