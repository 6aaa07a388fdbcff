// Package writer exposes sinks for encoded documents.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink receives one complete encoded document.
type Sink interface {
	WriteDocument(buf []byte) error
}

// DefaultPerm is the mode of files created by FileWriter when Perm is zero.
const DefaultPerm os.FileMode = 0o644

// FileWriter writes documents to a filesystem path atomically, so readers
// never observe a half-written torrent.
type FileWriter struct {
	Path string
	Perm os.FileMode
}

// WriteDocument writes buf to the configured path via temp file + rename.
func (w *FileWriter) WriteDocument(buf []byte) error {
	// Same directory, so the rename cannot cross filesystems.
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".bencodekit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	perm := w.Perm
	if perm == 0 {
		perm = DefaultPerm
	}
	if chmodErr := tmpFile.Chmod(perm); chmodErr != nil {
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}
	if _, writeErr := tmpFile.Write(buf); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}
	if syncErr := tmpFile.Sync(); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}
	return nil
}
