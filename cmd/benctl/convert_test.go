package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/joshuapare/bencodekit/pkg/ast"
	"github.com/joshuapare/bencodekit/pkg/bencode"
	"github.com/joshuapare/bencodekit/pkg/printer"
	"github.com/stretchr/testify/require"
)

func TestConvertCommand(t *testing.T) {
	torrentPath := testTorrentFile(t, map[string]int64{"a.txt": 7})

	tests := []struct {
		name        string
		format      printer.Format
		wantContain []string
		wantJSON    bool
	}{
		{
			name:        "json",
			format:      printer.FormatJSON,
			wantJSON:    true,
			wantContain: []string{`"created by": "benctl test"`, `"$binary"`},
		},
		{
			name:        "yaml",
			format:      printer.FormatYAML,
			wantContain: []string{"created by: benctl test", "piece length: 16384"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			convertOpts.Format = tt.format

			output, err := captureOutput(t, func() error {
				return runConvert([]string{torrentPath})
			})
			require.NoError(t, err)
			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestConvertCommand_CBORFile(t *testing.T) {
	resetFlags()
	torrentPath := testTorrentFile(t, map[string]int64{"a.txt": 7})
	out := filepath.Join(t.TempDir(), "album.cbor")
	convertOpts.Format = printer.FormatCBOR
	convertOutput = out

	_, err := captureOutput(t, func() error {
		return runConvert([]string{torrentPath})
	})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, cbor.Unmarshal(data, &decoded))
	require.Equal(t, "benctl test", decoded["created by"])
}

func TestConvertCommand_RejectsText(t *testing.T) {
	resetFlags()
	convertOpts.Format = printer.FormatText
	_, err := captureOutput(t, func() error {
		return runConvert([]string{"unused"})
	})
	require.Error(t, err)
}

func TestEncodeCommand_RoundTrip(t *testing.T) {
	resetFlags()
	original := testTorrent(t, map[string]int64{"cd1/01.flac": 300, "notes.txt": 5})
	torrentPath := writeTestFile(t, "album.torrent", original)

	jsonText, err := captureOutput(t, func() error {
		return runConvert([]string{torrentPath})
	})
	require.NoError(t, err)
	jsonPath := writeTestFile(t, "album.json", []byte(jsonText))

	out := filepath.Join(t.TempDir(), "copy.torrent")
	encodeOutput = out
	_, err = captureOutput(t, func() error {
		return runEncode([]string{jsonPath})
	})
	require.NoError(t, err)

	encoded, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, original, encoded, "canonical input survives bencode -> JSON -> bencode")
}

func TestEncodeCommand_Stdout(t *testing.T) {
	resetFlags()
	path := writeTestFile(t, "in.json", []byte(`{"spam": ["a", 1], "cow": "moo", "gone": null}`))

	output, err := captureOutput(t, func() error {
		return runEncode([]string{path})
	})
	require.NoError(t, err)
	require.Equal(t, "d3:cow3:moo4:spaml1:ai1eee", output)

	v, err := bencode.DecodeBytesWithOptions([]byte(output), bencode.StrictOptions())
	require.NoError(t, err)
	require.True(t, ast.Equal(v, ast.NewDictionaryBuilder().
		SetText("cow", "moo").
		Set("spam", ast.NewList(ast.Text("a"), ast.Int(1))).
		Build()))
}

func TestEncodeCommand_BadInput(t *testing.T) {
	for name, in := range map[string]string{
		"float":        `{"a": 1.5}`,
		"null element": `[1, null]`,
		"top null":     `null`,
		"malformed":    `{"a": `,
		"trailing":     `{} {}`,
	} {
		t.Run(name, func(t *testing.T) {
			resetFlags()
			path := writeTestFile(t, "in.json", []byte(in))
			_, err := captureOutput(t, func() error {
				return runEncode([]string{path})
			})
			require.Error(t, err)
		})
	}
}
