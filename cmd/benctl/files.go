package main

import (
	"github.com/cockroachdb/errors"
	"github.com/joshuapare/bencodekit/pkg/torrent"
	"github.com/spf13/cobra"
)

var (
	filesFilter string
	filesSizes  bool
)

func init() {
	cmd := newFilesCmd()
	cmd.Flags().StringVarP(&filesFilter, "filter", "f", "", "Only list files matching an expression")
	cmd.Flags().BoolVarP(&filesSizes, "sizes", "s", false, "Show file sizes")
	rootCmd.AddCommand(cmd)
}

func newFilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files <file.torrent>",
		Short: "List the files of a torrent",
		Long: `The files command lists the paths of the files described by a torrent,
relative to the torrent's root directory.

The --filter expression is evaluated for each file with these fields:
  path    path segments joined with "/"
  name    last path segment
  ext     extension of name, including the dot
  length  size in bytes
  depth   number of path segments

Example:
  benctl files album.torrent
  benctl files album.torrent --filter 'ext == ".flac"'
  benctl files album.torrent --filter 'length > 100 * 1024 * 1024' --sizes
  benctl files album.torrent --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles(args)
		},
	}
	return cmd
}

type fileJSON struct {
	Path   string `json:"path"`
	Length int64  `json:"length"`
}

func runFiles(args []string) error {
	filter, err := torrent.NewFilter(filesFilter)
	if err != nil {
		return err
	}

	m, err := loadTorrent(args[0])
	if err != nil {
		return err
	}

	files, err := filter.Apply(m.Files())
	if err != nil {
		return errors.Wrap(err, "filter files")
	}
	printVerbose("%d of %d files selected\n", len(files), len(m.Files()))

	if jsonOut {
		out := make([]fileJSON, len(files))
		for i, f := range files {
			out[i] = fileJSON{Path: f.Join("/"), Length: f.Length}
		}
		return printJSON(map[string]any{
			"name":  m.Name(),
			"files": out,
		})
	}

	for _, f := range files {
		if filesSizes {
			printInfo("%12d  %s\n", f.Length, f.Join(pathSeparator))
		} else {
			printInfo("%s\n", f.Join(pathSeparator))
		}
	}
	return nil
}
