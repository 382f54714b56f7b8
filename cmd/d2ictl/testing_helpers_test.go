package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/d2ikit/internal/config"
	"github.com/joshuapare/d2ikit/internal/testutil"
	"github.com/joshuapare/d2ikit/item"
	"github.com/joshuapare/d2ikit/item/props"
	"github.com/joshuapare/d2ikit/pkg/d2i"
)

// useDefaultTables loads the built-in tables into the global kit and resets
// every flag variable the commands read.
func useDefaultTables(t *testing.T) {
	t.Helper()

	require.NoError(t, loadKit(context.Background(), d2i.TableSource{}))
	cfg = config.Config{Workers: 2, LogLevel: "info"}

	verbose, quiet, jsonOut = false, false, false
	dumpOffsets, dumpBits, dumpNoHeader = false, false, false
	propsRepeatable = false
	addBackup, addDryRun = false, false
	removeBackup, removeDryRun = false, false
	setOccurrence, setBackup, setDryRun = 0, false, false
	batchAdd, batchRemove = "", ""
	batchFailFast, batchBackup, batchDryRun = false, false, false
}

// writeRing writes a magic ring carrying ps and returns its path.
func writeRing(t *testing.T, name string, ps ...props.Property) string {
	t.Helper()
	return testutil.WriteItemFile(t, name, testutil.Build(t, kit.Parser, testutil.RingHeader(), ps...))
}

// reopen parses the item file at path with the global kit.
func reopen(t *testing.T, path string) *item.Record {
	t.Helper()
	rec, err := kit.Open(path)
	require.NoError(t, err)
	return rec
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	// Drain concurrently so large outputs cannot fill the pipe.
	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.String()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout
	return <-done, fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result any
	require.NoError(t, json.Unmarshal([]byte(output), &result), "invalid JSON output:\n%s", output)
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, want []string) {
	t.Helper()
	for _, s := range want {
		require.True(t, strings.Contains(output, s), "output missing %q:\n%s", s, output)
	}
}
