// Package mmfile maps item files read-only.
package mmfile

import "errors"

// MaxSize bounds the files Map accepts. Item records are a few dozen bytes;
// anything this large is not an item file.
const MaxSize = 1 << 20

// ErrTooLarge indicates a file larger than MaxSize.
var ErrTooLarge = errors.New("mmfile: file too large")

func noop() error { return nil }
