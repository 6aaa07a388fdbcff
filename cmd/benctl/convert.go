package main

import (
	"bytes"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/joshuapare/bencodekit/internal/logger"
	"github.com/joshuapare/bencodekit/internal/writer"
	"github.com/joshuapare/bencodekit/pkg/printer"
	"github.com/spf13/cobra"
)

var (
	convertOpts   = printer.Options{Format: printer.FormatJSON, IndentSize: printer.DefaultIndentSize}
	convertOutput string
)

func init() {
	cmd := newConvertCmd()
	cmd.Flags().Var(formatValue{target: &convertOpts.Format}, "to", "Target format (json, yaml, cbor)")
	cmd.Flags().IntVar(&convertOpts.IndentSize, "indent", printer.DefaultIndentSize, "Spaces per indent level")
	cmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Write to this file instead of stdout")
	rootCmd.AddCommand(cmd)
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a bencode file to JSON, YAML or CBOR",
		Long: `The convert command decodes a bencode file and writes it in another format.

Byte strings that are not valid UTF-8 become {"$binary": "<hex>"} in JSON,
!!binary scalars in YAML and byte strings in CBOR. Dictionary keys that are
not valid UTF-8 are written in JSON as "$binary:<hex>". JSON written this way
can be turned back into bencode with the encode command.

Example:
  benctl convert album.torrent --to json
  benctl convert album.torrent --to yaml -o album.yaml
  benctl convert album.torrent --to cbor -o album.cbor`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args)
		},
	}
	return cmd
}

func runConvert(args []string) error {
	if convertOpts.Format == printer.FormatText {
		return errors.WithHint(errors.New("convert does not write text"),
			"use benctl dump for the text tree")
	}

	root, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	if convertOutput == "" || convertOutput == "-" {
		return printer.New(os.Stdout, convertOpts).Print(root)
	}

	var buf bytes.Buffer
	if err := printer.New(&buf, convertOpts).Print(root); err != nil {
		return err
	}
	if err := (&writer.FileWriter{Path: convertOutput}).WriteDocument(buf.Bytes()); err != nil {
		return errors.Wrapf(err, "write %s", convertOutput)
	}
	logger.Info("converted", "input", args[0], "output", convertOutput, "format", string(convertOpts.Format))
	printVerbose("Wrote %d bytes to %s\n", buf.Len(), convertOutput)
	return nil
}
