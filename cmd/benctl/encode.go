package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/joshuapare/bencodekit/internal/logger"
	"github.com/joshuapare/bencodekit/pkg/bencode"
	"github.com/joshuapare/bencodekit/pkg/printer"
	"github.com/spf13/cobra"
)

var encodeOutput string

func init() {
	cmd := newEncodeCmd()
	cmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "Write to this file instead of stdout")
	rootCmd.AddCommand(cmd)
}

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <in.json>",
		Short: "Encode JSON as canonical bencode",
		Long: `The encode command reads JSON, as written by convert --to json, and writes
the canonical bencode encoding with dictionary keys in ascending byte order.

Objects of the form {"$binary": "<hex>"} become binary strings and keys of
the form "$binary:<hex>" become binary keys. Booleans are written as 1 or 0
and null object fields are left out. Use - to read from stdin. The output
file is replaced atomically.

Example:
  benctl convert album.torrent --to json > album.json
  benctl encode album.json -o album.torrent`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(args)
		},
	}
	return cmd
}

func runEncode(args []string) error {
	input := args[0]

	var (
		data []byte
		err  error
	)
	if input == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(input)
	}
	if err != nil {
		return errors.Wrapf(err, "read %s", input)
	}

	v, err := printer.FromJSON(data)
	if err != nil {
		return errors.WithHint(errors.Wrapf(err, "convert %s", input),
			"the input must be JSON as written by: benctl convert --to json")
	}

	if encodeOutput == "" || encodeOutput == "-" {
		out, err := bencode.Marshal(v)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	}

	if err := bencode.WriteFile(encodeOutput, v); err != nil {
		return errors.Wrapf(err, "write %s", encodeOutput)
	}
	logger.Info("encoded", "input", input, "output", encodeOutput)
	printVerbose("Wrote %s\n", encodeOutput)
	return nil
}
