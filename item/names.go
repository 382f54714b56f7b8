package item

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/d2ikit/item/itembase"
)

// decodeCode turns the raw type code bytes into a trimmed string. Item codes
// are written by the game in the Windows-1252 code page.
func decodeCode(raw []byte) (string, error) {
	s, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return itembase.NormalizeCode(string(s)), nil
}

// encodeCode pads code with spaces to the fixed type code width.
func encodeCode(code string, width int) ([]byte, error) {
	raw, err := charmap.Windows1252.NewEncoder().Bytes([]byte(code))
	if err != nil {
		return nil, fmt.Errorf("%w: type code %q: %w", ErrInvalidHeader, code, err)
	}
	if len(raw) > width {
		return nil, fmt.Errorf("%w: type code %q longer than %d", ErrInvalidHeader, code, width)
	}
	for len(raw) < width {
		raw = append(raw, ' ')
	}
	return raw, nil
}

func decodeName(chars []byte) (string, error) {
	s, err := charmap.Windows1252.NewDecoder().Bytes(chars)
	if err != nil {
		return "", err
	}
	return string(s), nil
}

// encodeName returns the 7-bit characters of name.
func encodeName(name string, maxChars int) ([]byte, error) {
	raw, err := charmap.Windows1252.NewEncoder().Bytes([]byte(name))
	if err != nil {
		return nil, fmt.Errorf("%w: name %q: %w", ErrInvalidHeader, name, err)
	}
	if len(raw) > maxChars {
		return nil, fmt.Errorf("%w: name %q longer than %d", ErrInvalidHeader, name, maxChars)
	}
	for _, c := range raw {
		if c == 0 || c > 0x7f {
			return nil, fmt.Errorf("%w: name %q has a character outside 7 bits", ErrInvalidHeader, name)
		}
	}
	return raw, nil
}
