package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/joshuapare/bencodekit/internal/logger"
	"github.com/joshuapare/bencodekit/pkg/torrent"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var pathSeparator = string(filepath.Separator)

var (
	diffExitCode bool
	diffSummary  bool
)

func init() {
	cmd := newDiffCmd()
	cmd.Flags().
		BoolVar(&diffExitCode, "exit-code", false, "Exit with status 1 when the torrent and directory differ")
	cmd.Flags().BoolVar(&diffSummary, "summary", false, "Print only the number of files in each class")
	rootCmd.AddCommand(cmd)
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <file.torrent> <dir> [+] [-] [=]",
		Short: "Compare a torrent's file list with a directory",
		Long: `The diff command compares the files listed in a torrent with the files
found below a directory, matching paths relative to the directory.

Each path is printed with a marker:
  =path   listed in the torrent and present in the directory
  -path   present in the directory only
  +path   listed in the torrent only

The optional symbols select which classes to print; all are printed when
none is given.

Example:
  benctl diff album.torrent ~/Music/album
  benctl diff album.torrent ~/Music/album + -
  benctl diff album.torrent ~/Music/album --exit-code`,
		Args: cobra.RangeArgs(2, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}
	return cmd
}

// diffSelection records which classes of paths to print.
type diffSelection struct {
	equal       bool
	dirOnly     bool
	torrentOnly bool
}

func parseDiffSelection(symbols []string) (diffSelection, error) {
	if len(symbols) == 0 {
		return diffSelection{equal: true, dirOnly: true, torrentOnly: true}, nil
	}
	var sel diffSelection
	for _, s := range symbols {
		switch s {
		case "=":
			sel.equal = true
		case "-":
			sel.dirOnly = true
		case "+":
			sel.torrentOnly = true
		default:
			return sel, errors.WithHint(errors.Newf("unknown selector %q", s),
				"use + (torrent only), - (directory only) or = (both)")
		}
	}
	return sel, nil
}

func runDiff(args []string) error {
	torrentPath, dir := args[0], args[1]
	sel, err := parseDiffSelection(args[2:])
	if err != nil {
		return err
	}
	printVerbose("Selection: %s\n", sel)

	// The torrent and the directory are independent; read both at once.
	var (
		m        *torrent.Metainfo
		dirFiles []string
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		m, err = loadTorrent(torrentPath)
		return err
	})
	g.Go(func() error {
		printVerbose("Scanning: %s\n", dir)
		var err error
		dirFiles, err = torrent.ScanDir(dir)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	cmp := torrent.Compare(m.FilePaths(), dirFiles)
	logger.Info("diff",
		"torrent", torrentPath,
		"dir", dir,
		"equal", len(cmp.Equal),
		"dir_only", len(cmp.DirOnly),
		"torrent_only", len(cmp.TorrentOnly))

	if err := printComparison(cmp, sel); err != nil {
		return err
	}
	if diffExitCode && !cmp.Identical() {
		return errDifferences
	}
	return nil
}

func printComparison(cmp torrent.Comparison, sel diffSelection) error {
	if jsonOut {
		out := map[string][]string{}
		if sel.equal {
			out["equal"] = nonNil(cmp.Equal)
		}
		if sel.dirOnly {
			out["dir_only"] = nonNil(cmp.DirOnly)
		}
		if sel.torrentOnly {
			out["torrent_only"] = nonNil(cmp.TorrentOnly)
		}
		return printJSON(out)
	}

	if diffSummary {
		if sel.equal {
			printInfo("= %d\n", len(cmp.Equal))
		}
		if sel.dirOnly {
			printInfo("- %d\n", len(cmp.DirOnly))
		}
		if sel.torrentOnly {
			printInfo("+ %d\n", len(cmp.TorrentOnly))
		}
		return nil
	}

	if quiet {
		return nil
	}
	if sel.equal {
		printMarked(color.New(color.Faint), "=", cmp.Equal)
	}
	if sel.dirOnly {
		printMarked(color.New(color.FgRed), "-", cmp.DirOnly)
	}
	if sel.torrentOnly {
		printMarked(color.New(color.FgGreen), "+", cmp.TorrentOnly)
	}
	return nil
}

func printMarked(c *color.Color, marker string, paths []string) {
	for _, p := range paths {
		c.Fprintln(os.Stdout, marker+p)
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// String implements fmt.Stringer for verbose logging.
func (s diffSelection) String() string {
	return fmt.Sprintf("equal=%t dir-only=%t torrent-only=%t", s.equal, s.dirOnly, s.torrentOnly)
}
