package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/joshuapare/bencodekit/pkg/ast"
	"github.com/joshuapare/bencodekit/pkg/printer"
	"github.com/spf13/cobra"
)

var getOpts = printer.DefaultOptions()

func init() {
	cmd := newGetCmd()
	cmd.Flags().AddFlagSet(printerFlags(&getOpts, "format"))
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print the value at a path",
		Long: `The get command prints the value found at a path in a bencode file.

A path is a sequence of dictionary keys separated by dots, with list
indexes in brackets. A dot, bracket or backslash inside a key is escaped
with a backslash, and "" names the empty key. The command fails when
nothing exists at the path.

Example:
  benctl get album.torrent announce
  benctl get album.torrent info.files[0].path
  benctl get album.torrent 'info.piece length'
  benctl get album.torrent info --depth 1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	filePath, path := args[0], args[1]

	segs, err := ast.SplitPath(path)
	if err != nil {
		return errors.Wrapf(err, "parse path %q", path)
	}

	root, err := loadDocument(filePath)
	if err != nil {
		return err
	}

	v := ast.LookupSegments(root, segs)
	if !v.Exists() {
		return errors.WithHint(errors.Newf("no value at %s", path),
			"list the available keys with: benctl dump --depth 1 "+filePath)
	}

	opts := getOpts
	if jsonOut {
		opts.Format = printer.FormatJSON
	}

	// A bare text scalar prints as itself so the output can be used in scripts.
	if opts.Format == printer.FormatText && !opts.ShowTypes {
		if s, ok := v.Text(); ok {
			printInfo("%s\n", s)
			return nil
		}
		if v.IsInteger() {
			printInfo("%d\n", v.Int())
			return nil
		}
	}
	return printer.New(os.Stdout, opts).Print(v)
}
