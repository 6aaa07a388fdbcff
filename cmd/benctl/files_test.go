package main

import (
	"testing"
)

func TestFilesCommand(t *testing.T) {
	torrentPath := testTorrentFile(t, map[string]int64{
		"cd1/01.flac":   300,
		"cd1/cover.jpg": 20,
		"notes.txt":     5,
	})

	tests := []struct {
		name           string
		filter         string
		sizes          bool
		json           bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "all files",
			wantContain: []string{"01.flac", "cover.jpg", "notes.txt"},
		},
		{
			name:           "filter by extension",
			filter:         `ext == ".flac"`,
			wantContain:    []string{"01.flac"},
			wantNotContain: []string{"cover.jpg", "notes.txt"},
		},
		{
			name:           "filter by length",
			filter:         "length >= 20",
			wantContain:    []string{"01.flac", "cover.jpg"},
			wantNotContain: []string{"notes.txt"},
		},
		{
			name:        "with sizes",
			sizes:       true,
			wantContain: []string{"300", "notes.txt"},
		},
		{
			name:        "json",
			json:        true,
			wantContain: []string{`"name": "album"`, `"path": "cd1/01.flac"`, `"length": 300`},
		},
		{
			name:    "bad filter",
			filter:  "length >",
			wantErr: true,
		},
		{
			name:    "filter not boolean",
			filter:  "length",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			filesFilter = tt.filter
			filesSizes = tt.sizes
			jsonOut = tt.json

			output, err := captureOutput(t, func() error {
				return runFiles([]string{torrentPath})
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runFiles() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
				return
			}
			if tt.json && !tt.wantErr {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestFilesCommand_NotATorrent(t *testing.T) {
	resetFlags()
	path := writeTestFile(t, "list.torrent", []byte("li1ee"))
	_, err := captureOutput(t, func() error {
		return runFiles([]string{path})
	})
	if err == nil {
		t.Fatal("expected error for a document without an info dictionary")
	}
}
