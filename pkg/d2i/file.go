package d2i

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joshuapare/d2ikit/internal/mmfile"
	"github.com/joshuapare/d2ikit/internal/writer"
	"github.com/joshuapare/d2ikit/item"
	"github.com/joshuapare/d2ikit/item/edit"
)

// Options configures a Kit.
type Options struct {
	// Logger is handed to the edit engine and receives file-level events.
	// Nil discards.
	Logger *slog.Logger
}

// SaveOptions controls how an item file is replaced.
type SaveOptions struct {
	// CreateBackup copies the current file to <path>.bak first.
	CreateBackup bool

	// DryRun performs the edit and verification but writes nothing.
	DryRun bool
}

// Kit bundles a parser and an engine over one set of tables.
type Kit struct {
	Parser *item.Parser
	Engine *edit.Engine
	log    *slog.Logger
}

// New returns a Kit over t.
func New(t Tables, opts Options) *Kit {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p := item.NewParser(t.Props, t.Bases)
	return &Kit{
		Parser: p,
		Engine: edit.NewEngine(p, edit.Options{Logger: log}),
		log:    log,
	}
}

// Open reads and parses the item file at path.
func (k *Kit) Open(path string) (*item.Record, error) {
	return Open(path, k.Parser)
}

// Save writes rec to path atomically.
func (k *Kit) Save(path string, rec *item.Record, opts *SaveOptions) error {
	return Save(path, rec, opts)
}

// ApplyFile opens path, applies d and saves the result. The returned record
// is the verified result, whether or not it was written.
func (k *Kit) ApplyFile(path string, d edit.Delta, opts *SaveOptions) (*item.Record, error) {
	if opts == nil {
		opts = &SaveOptions{}
	}
	rec, err := k.Open(path)
	if err != nil {
		return nil, err
	}
	out, err := k.Engine.Apply(rec, d)
	if err != nil {
		return nil, fmt.Errorf("edit %s: %w", path, err)
	}
	if opts.DryRun {
		k.log.Info("dry run, not writing", "path", path)
		return out, nil
	}
	if err := Save(path, out, opts); err != nil {
		return nil, err
	}
	k.log.Info("item updated", "path", path, "properties", len(out.Properties))
	return out, nil
}

// Open reads the item file at path through a read-only mapping and parses it.
// The record does not reference the mapping.
func Open(path string, p *item.Parser) (*item.Record, error) {
	if !fileExists(path) {
		return nil, fmt.Errorf("item file not found: %s", path)
	}
	data, release, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read item %s: %w", path, err)
	}
	defer release()

	rec, err := p.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse item %s: %w", path, err)
	}
	return rec, nil
}

// Save writes rec to path atomically.
func Save(path string, rec *item.Record, opts *SaveOptions) error {
	if opts == nil {
		opts = &SaveOptions{}
	}
	if opts.DryRun {
		return nil
	}
	if opts.CreateBackup && fileExists(path) {
		backupPath := path + ".bak"
		if err := copyFile(path, backupPath); err != nil {
			return fmt.Errorf("failed to create backup at %s: %w", backupPath, err)
		}
	}

	w := &writer.FileWriter{Path: path}
	if err := w.WriteItem(item.Write(rec)); err != nil {
		return fmt.Errorf("failed to replace item %s: %w", path, err)
	}
	return nil
}

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	defer dstFile.Close()

	if _, copyErr := io.Copy(dstFile, srcFile); copyErr != nil {
		return fmt.Errorf("failed to copy data: %w", copyErr)
	}
	return dstFile.Close()
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
