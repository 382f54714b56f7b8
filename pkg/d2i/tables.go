package d2i

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/d2ikit/internal/gamedb"
	"github.com/joshuapare/d2ikit/item/itembase"
	"github.com/joshuapare/d2ikit/item/props"
)

// Tables bundles the two definition tables every parser needs.
type Tables struct {
	Props *props.Table
	Bases *itembase.Table
}

// TableSource selects where LoadTables reads from. DBPath wins over the TSV
// paths; an empty path falls back to the built-in table.
type TableSource struct {
	PropsPath string
	ItemsPath string
	DBPath    string
}

// LoadTables loads both tables from src.
func LoadTables(ctx context.Context, src TableSource) (Tables, error) {
	if src.DBPath != "" {
		return loadDB(ctx, src.DBPath)
	}

	var t Tables
	var err error
	if src.PropsPath != "" {
		t.Props, err = loadTSV(src.PropsPath, props.LoadTSV)
	} else {
		t.Props, err = props.Default()
	}
	if err != nil {
		return Tables{}, fmt.Errorf("load property table: %w", err)
	}

	if src.ItemsPath != "" {
		t.Bases, err = loadTSV(src.ItemsPath, itembase.LoadTSV)
	} else {
		t.Bases, err = itembase.Default()
	}
	if err != nil {
		return Tables{}, fmt.Errorf("load item-base table: %w", err)
	}
	return t, nil
}

func loadDB(ctx context.Context, path string) (Tables, error) {
	if !fileExists(path) {
		return Tables{}, fmt.Errorf("game database not found: %s", path)
	}
	db, err := gamedb.Open(path)
	if err != nil {
		return Tables{}, err
	}
	defer db.Close()

	pt, err := db.Props(ctx)
	if err != nil {
		return Tables{}, fmt.Errorf("load property table: %w", err)
	}
	bt, err := db.Bases(ctx)
	if err != nil {
		return Tables{}, fmt.Errorf("load item-base table: %w", err)
	}
	return Tables{Props: pt, Bases: bt}, nil
}

func loadTSV[T any](path string, load func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()
	return load(f)
}
