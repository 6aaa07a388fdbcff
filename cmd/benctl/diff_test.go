package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiffCommand(t *testing.T) {
	torrentPath := testTorrentFile(t, map[string]int64{
		"a.txt":     1,
		"sub/b.txt": 1,
		"c.txt":     1,
	})
	dir := testDir(t, "a.txt", "sub/b.txt", "extra.txt")
	sep := string(filepath.Separator)

	tests := []struct {
		name           string
		symbols        []string
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "all classes",
			wantContain: []string{"=a.txt", "=sub" + sep + "b.txt", "-extra.txt", "+c.txt"},
		},
		{
			name:           "torrent only",
			symbols:        []string{"+"},
			wantContain:    []string{"+c.txt"},
			wantNotContain: []string{"=a.txt", "-extra.txt"},
		},
		{
			name:           "dir only and equal",
			symbols:        []string{"-", "="},
			wantContain:    []string{"-extra.txt", "=a.txt"},
			wantNotContain: []string{"+c.txt"},
		},
		{
			name:    "unknown symbol",
			symbols: []string{"*"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			args := append([]string{torrentPath, dir}, tt.symbols...)

			output, err := captureOutput(t, func() error {
				return runDiff(args)
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runDiff() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
				return
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestDiffCommand_Order(t *testing.T) {
	resetFlags()
	torrentPath := testTorrentFile(t, map[string]int64{"both": 1, "t1": 1, "t2": 1})
	dir := testDir(t, "both", "d1")

	output, err := captureOutput(t, func() error {
		return runDiff([]string{torrentPath, dir})
	})
	require.NoError(t, err)
	require.Equal(t, []string{"=both", "-d1", "+t1", "+t2"}, strings.Fields(output))
}

func TestDiffCommand_ExitCode(t *testing.T) {
	resetFlags()
	diffExitCode = true
	torrentPath := testTorrentFile(t, map[string]int64{"a": 1})

	_, err := captureOutput(t, func() error {
		return runDiff([]string{torrentPath, testDir(t, "a")})
	})
	require.NoError(t, err)

	_, err = captureOutput(t, func() error {
		return runDiff([]string{torrentPath, testDir(t, "a", "b")})
	})
	require.ErrorIs(t, err, errDifferences)
}

func TestDiffCommand_JSONAndSummary(t *testing.T) {
	torrentPath := testTorrentFile(t, map[string]int64{"a": 1, "b": 1})
	dir := testDir(t, "a")

	resetFlags()
	jsonOut = true
	output, err := captureOutput(t, func() error {
		return runDiff([]string{torrentPath, dir})
	})
	require.NoError(t, err)
	var got map[string][]string
	require.NoError(t, json.Unmarshal([]byte(output), &got))
	require.Equal(t, map[string][]string{
		"equal":        {"a"},
		"dir_only":     {},
		"torrent_only": {"b"},
	}, got)

	resetFlags()
	diffSummary = true
	output, err = captureOutput(t, func() error {
		return runDiff([]string{torrentPath, dir, "+"})
	})
	require.NoError(t, err)
	require.Equal(t, "+ 1\n", output)
}

func TestDiffCommand_MissingInputs(t *testing.T) {
	resetFlags()
	torrentPath := testTorrentFile(t, map[string]int64{"a": 1})

	_, err := captureOutput(t, func() error {
		return runDiff([]string{torrentPath, filepath.Join(t.TempDir(), "missing")})
	})
	require.Error(t, err)

	_, err = captureOutput(t, func() error {
		return runDiff([]string{filepath.Join(t.TempDir(), "missing.torrent"), t.TempDir()})
	})
	require.Error(t, err)
}
