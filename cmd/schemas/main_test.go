package main

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	require.NoError(t, w.Close())
	os.Stdout = old
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestRunEmitsMarkerBlocks(t *testing.T) {
	out := captureStdout(t, func() {
		require.Zero(t, run([]string{"fee-rate"}))
	})

	require.Contains(t, out, "----begin example: fee-rate----")
	require.Contains(t, out, "----begin minmal example: fee-rate----")
	require.Contains(t, out, "----end: fee-rate----")
	require.Contains(t, out, `"per_item_amount"`)
}

func TestRunAllSchemasByDefault(t *testing.T) {
	out := captureStdout(t, func() {
		require.Zero(t, run(nil))
	})

	for _, name := range []string{"billing-entity", "invoice-info", "settlement"} {
		require.Contains(t, out, "----begin example: "+name+"----")
	}
}

func TestRunRejectsUnknownSchema(t *testing.T) {
	out := captureStdout(t, func() {
		require.Equal(t, 1, run([]string{"no-such-table"}))
	})

	require.Contains(t, out, `Error: unknown schema "no-such-table"`)
}
