// Package writer holds sinks for encoded item records.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink receives one encoded item record, signature included.
type Sink interface {
	WriteItem(data []byte) error
}

// FileWriter replaces the file at Path atomically via temp file + rename.
type FileWriter struct {
	Path string
	// Perm is applied to the new file. Zero means 0644.
	Perm os.FileMode
}

// WriteItem writes data to a temp file beside Path, syncs it and renames it
// over Path. A failed write leaves Path untouched.
func (w *FileWriter) WriteItem(data []byte) error {
	// Same directory, so the rename cannot cross filesystems.
	tmpFile, err := os.CreateTemp(filepath.Dir(w.Path), ".d2i-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}
	if syncErr := tmpFile.Sync(); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}
	perm := w.Perm
	if perm == 0 {
		perm = 0o644
	}
	if chmodErr := tmpFile.Chmod(perm); chmodErr != nil {
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}
	return nil
}

// MemWriter keeps the last record written to it.
type MemWriter struct {
	Buf []byte
}

// WriteItem copies data into Buf, reusing its storage.
func (w *MemWriter) WriteItem(data []byte) error {
	w.Buf = append(w.Buf[:0], data...)
	return nil
}
