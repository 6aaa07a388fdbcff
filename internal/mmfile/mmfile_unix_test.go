//go:build unix

package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.torrent")
	want := []byte("d8:announce3:urle")
	require.NoError(t, os.WriteFile(path, want, 0o644))

	data, release, err := Map(path)
	require.NoError(t, err)
	require.Equal(t, want, data)

	require.NoError(t, release())
	require.NoError(t, release(), "second release is a no-op")
}

func TestMap_ZeroLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.torrent")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	data, release, err := Map(path)
	require.NoError(t, err)
	require.Empty(t, data)
	require.NotNil(t, release)
	require.NoError(t, release())
}

func TestMap_Errors(t *testing.T) {
	_, _, err := Map(filepath.Join(t.TempDir(), "missing.torrent"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = Map(t.TempDir())
	require.Error(t, err, "directories cannot be mapped")
}
