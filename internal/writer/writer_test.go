package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileWriter_Replaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ring.d2i")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	w := &FileWriter{Path: path}
	require.NoError(t, w.WriteItem([]byte("JM\x10\x00")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("JM\x10\x00"), got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file left behind")
}

func TestFileWriter_MissingDirectory(t *testing.T) {
	w := &FileWriter{Path: filepath.Join(t.TempDir(), "absent", "ring.d2i")}
	require.ErrorContains(t, w.WriteItem([]byte("JM")), "create temp file")
}

func TestMemWriter(t *testing.T) {
	var w MemWriter
	require.NoError(t, w.WriteItem([]byte("JM\x01\x02")))
	require.NoError(t, w.WriteItem([]byte("JM")))
	require.Equal(t, []byte("JM"), w.Buf)

	var sink Sink = &w
	require.NoError(t, sink.WriteItem([]byte("JMx")))
	require.Equal(t, []byte("JMx"), w.Buf)
}
