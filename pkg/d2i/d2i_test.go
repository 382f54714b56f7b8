package d2i_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/d2ikit/internal/gamedb"
	"github.com/joshuapare/d2ikit/internal/testutil"
	"github.com/joshuapare/d2ikit/item"
	"github.com/joshuapare/d2ikit/item/edit"
	"github.com/joshuapare/d2ikit/item/props"
	"github.com/joshuapare/d2ikit/pkg/d2i"
)

func newKit(t *testing.T) *d2i.Kit {
	t.Helper()
	tables, err := d2i.LoadTables(context.Background(), d2i.TableSource{})
	require.NoError(t, err)
	return d2i.New(tables, d2i.Options{})
}

func TestOpenSave_RoundTrip(t *testing.T) {
	kit := newKit(t)
	data := testutil.Build(t, kit.Parser, testutil.RingHeader(), props.Property{ID: 0, Value: 10})
	path := testutil.WriteItemFile(t, "ring.d2i", data)

	rec, err := kit.Open(path)
	require.NoError(t, err)
	require.Equal(t, "rin", rec.TypeCode)

	out := filepath.Join(t.TempDir(), "copy.d2i")
	require.NoError(t, kit.Save(out, rec, nil))
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestOpen_Errors(t *testing.T) {
	kit := newKit(t)

	_, err := kit.Open(filepath.Join(t.TempDir(), "missing.d2i"))
	require.ErrorContains(t, err, "not found")

	path := testutil.WriteItemFile(t, "bad.d2i", []byte("XX\x00"))
	_, err = kit.Open(path)
	require.ErrorIs(t, err, item.ErrBadSignature)
}

func TestApplyFile(t *testing.T) {
	kit := newKit(t)
	data := testutil.Build(t, kit.Parser, testutil.RingHeader())
	path := testutil.WriteItemFile(t, "ring.d2i", data)

	out, err := kit.ApplyFile(path, edit.Delta{Add: []props.Property{{ID: 79, Value: 50}}}, &d2i.SaveOptions{CreateBackup: true})
	require.NoError(t, err)
	require.Len(t, out.Properties, 1)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, item.Write(out), written)

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	require.Equal(t, data, backup)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 2, "only the item and its backup")
}

func TestApplyFile_DryRunAndFailure(t *testing.T) {
	kit := newKit(t)
	data := testutil.Build(t, kit.Parser, testutil.RingHeader())
	path := testutil.WriteItemFile(t, "ring.d2i", data)

	_, err := kit.ApplyFile(path, edit.Delta{Add: []props.Property{{ID: 79, Value: 50}}}, &d2i.SaveOptions{DryRun: true})
	require.NoError(t, err)

	_, err = kit.ApplyFile(path, edit.Delta{Add: []props.Property{{ID: 79, Value: 9000}}}, nil)
	require.ErrorIs(t, err, edit.ErrValueOutOfRange)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestLoadTables_TSV(t *testing.T) {
	dir := t.TempDir()
	propsPath := filepath.Join(dir, "props.tsv")
	itemsPath := filepath.Join(dir, "items.tsv")
	require.NoError(t, os.WriteFile(propsPath, []byte(strings.Join([]string{
		"id\tname\tadd\tbits\tparamBits",
		"79\titem_goldbonus\t100\t9\t0",
	}, "\n")), 0o644))
	require.NoError(t, os.WriteFile(itemsPath, []byte("rin\tRing\tring,misc\t0\n"), 0o644))

	tables, err := d2i.LoadTables(context.Background(), d2i.TableSource{PropsPath: propsPath, ItemsPath: itemsPath})
	require.NoError(t, err)
	require.Equal(t, 1, tables.Props.Len())
	require.Equal(t, 1, tables.Bases.Len())

	_, err = d2i.LoadTables(context.Background(), d2i.TableSource{PropsPath: filepath.Join(dir, "nope.tsv")})
	require.Error(t, err)
}

func TestLoadTables_DB(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "game.db")
	pt, bt := testutil.Tables(t)

	db, err := gamedb.Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Import(ctx, pt, bt))
	require.NoError(t, db.Close())

	tables, err := d2i.LoadTables(ctx, d2i.TableSource{DBPath: path, PropsPath: "ignored"})
	require.NoError(t, err)
	require.Equal(t, pt.Len(), tables.Props.Len())
	require.Equal(t, bt.Len(), tables.Bases.Len())

	_, err = d2i.LoadTables(ctx, d2i.TableSource{DBPath: filepath.Join(t.TempDir(), "missing.db")})
	require.ErrorContains(t, err, "not found")
}
