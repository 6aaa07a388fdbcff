package torrent

import (
	"io/fs"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// ScanDir returns the paths, relative to root, of every non-directory entry
// below root. Symbolic links to directories are listed, not followed.
func ScanDir(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "scan directory %s", root)
	}
	return files, nil
}
