package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInit_DiscardByDefault(t *testing.T) {
	require.NoError(t, Init(Options{}))
	t.Cleanup(func() { _ = Close() })
	require.False(t, L.Enabled(t.Context(), 12))
}

func TestInit_VerboseWritesTextToStderr(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Verbose: true, Stderr: &buf}))
	t.Cleanup(func() { _ = Close() })

	Debug("decoded", "bytes", 42)
	require.Contains(t, buf.String(), "level=DEBUG")
	require.Contains(t, buf.String(), "bytes=42")
}

func TestInit_LogFileWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benctl.log")
	require.NoError(t, Init(Options{LogFile: path}))

	Debug("hidden")
	Info("scanned", "files", 3)
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1, "debug is below the default file level")

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	require.Equal(t, "scanned", rec["msg"])
	require.Equal(t, float64(3), rec["files"])
}

func TestInit_LogDirUsesDatedFile(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, logPrefix+"2000-01-01"+logSuffix)
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(stale, nil, 0o644))
	require.NoError(t, os.WriteFile(other, nil, 0o644))

	require.NoError(t, Init(Options{LogDir: dir}))
	Warn("hello")
	require.NoError(t, Close())

	_, err := os.Stat(stale)
	require.True(t, os.IsNotExist(err), "stale log removed")
	_, err = os.Stat(other)
	require.NoError(t, err, "unrelated files kept")

	today := filepath.Join(dir, logPrefix+time.Now().Format(time.DateOnly)+logSuffix)
	data, err := os.ReadFile(today)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"hello"`)
}
