// Package d2i is the file-level API for single-item .d2i files.
//
// # Overview
//
// The packages under item/ work on bytes and records. This package adds the
// file handling around them: loading definition tables from the built-in
// data, TSV files or a sqlite database, memory-mapping item files, and
// replacing them atomically after an edit.
//
// # Quick Start
//
//	tables, err := d2i.LoadTables(ctx, d2i.TableSource{})
//	kit := d2i.New(tables, d2i.Options{})
//	rec, err := kit.Open("ring.d2i")
//
//	// Add 50% extra gold and write the file back
//	_, err = kit.ApplyFile("ring.d2i", edit.Delta{
//	    Add: []props.Property{{ID: 79, Value: 50}},
//	}, nil)
//
// # Atomic Writes
//
// Save writes to <path>.tmp and renames it over the target, so a failed
// write never leaves a truncated item behind. SaveOptions.CreateBackup keeps
// the previous file at <path>.bak.
package d2i
