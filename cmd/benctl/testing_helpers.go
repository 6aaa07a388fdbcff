package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/joshuapare/bencodekit/pkg/bencode"
	"github.com/joshuapare/bencodekit/pkg/printer"
)

// resetFlags restores every command flag to its default.
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	noColor = true
	logFile = ""
	logDir = ""
	limits = "default"
	color.NoColor = true

	filesFilter = ""
	filesSizes = false
	diffExitCode = false
	diffSummary = false
	dumpOpts = printer.DefaultOptions()
	getOpts = printer.DefaultOptions()
	convertOpts = printer.Options{Format: printer.FormatJSON, IndentSize: printer.DefaultIndentSize}
	convertOutput = ""
	encodeOutput = ""
	cmpContext = 2
}

// writeTestFile writes data to name inside a fresh temp directory and
// returns the full path.
func writeTestFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// testTorrent encodes a multi-file torrent named "album" listing the given
// files, each as a slash-separated path with a length.
func testTorrent(t *testing.T, files map[string]int64) []byte {
	t.Helper()
	data, err := bencode.EncodeDictionary(bencode.DictionaryFunc(func(f *bencode.Fields) error {
		f.Text("announce", "http://tracker.example/announce")
		f.Text("created by", "benctl test")
		f.Integer("creation date", 1700000000)
		f.Dictionary("info", bencode.DictionaryFunc(func(info *bencode.Fields) error {
			info.Text("name", "album")
			info.Integer("piece length", 16384)
			info.Bytes("pieces", bytes.Repeat([]byte{0xab}, 40))
			info.List("files", bencode.ListFunc(func(e *bencode.Encoder) error {
				for path, length := range files {
					err := e.WriteDictionary(bencode.DictionaryFunc(func(file *bencode.Fields) error {
						file.Integer("length", length)
						file.List("path", bencode.ListFunc(func(e *bencode.Encoder) error {
							for _, seg := range strings.Split(path, "/") {
								if err := e.WriteText(seg); err != nil {
									return err
								}
							}
							return nil
						}))
						return nil
					}))
					if err != nil {
						return err
					}
				}
				return nil
			}))
			return nil
		}))
		return nil
	}))
	if err != nil {
		t.Fatalf("encode torrent: %v", err)
	}
	return data
}

// testTorrentFile writes testTorrent(files) to album.torrent.
func testTorrentFile(t *testing.T, files map[string]int64) string {
	t.Helper()
	return writeTestFile(t, "album.torrent", testTorrent(t, files))
}

// testDir creates the given slash-separated files under a temp directory.
func testDir(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return dir
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Drain concurrently so large outputs cannot fill the pipe.
	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	return string(<-done), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
