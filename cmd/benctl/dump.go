package main

import (
	"os"

	"github.com/joshuapare/bencodekit/pkg/printer"
	"github.com/spf13/cobra"
)

var dumpOpts = printer.DefaultOptions()

func init() {
	cmd := newDumpCmd()
	cmd.Flags().AddFlagSet(printerFlags(&dumpOpts, "format"))
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the decoded tree of a bencode file",
		Long: `The dump command decodes a bencode file and prints the whole tree.

Text output shows one value per line. Binary strings, such as the piece
hashes of a torrent, are shown as hex and truncated to --max-bytes.

Example:
  benctl dump album.torrent
  benctl dump album.torrent --depth 2
  benctl dump album.torrent --format yaml
  benctl dump album.torrent --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	root, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	opts := dumpOpts
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	return printer.New(os.Stdout, opts).Print(root)
}
