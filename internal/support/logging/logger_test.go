package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormats(t *testing.T) {
	var buf bytes.Buffer
	New(Options{Level: slog.LevelInfo, Output: &buf}).Info("tick", "rows", 3)
	assert.Contains(t, buf.String(), `"msg":"tick"`)
	assert.Contains(t, buf.String(), `"rows":3`)

	buf.Reset()
	New(Options{Level: slog.LevelInfo, Format: "text", Output: &buf}).Info("tick", "rows", 3)
	assert.Contains(t, buf.String(), "msg=tick rows=3")

	buf.Reset()
	New(Options{Level: slog.LevelWarn, Output: &buf}).Info("hidden")
	assert.Empty(t, buf.String())
}

func TestOpenFile(t *testing.T) {
	w, err := OpenFile("")
	require.NoError(t, err)
	_, err = w.Write([]byte("dropped"))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "logs", "ifmon.log")
	w, err = OpenFile(path)
	require.NoError(t, err)
	New(Options{Output: w}).Info("started")
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "started")
}
