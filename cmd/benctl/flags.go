package main

import (
	"github.com/joshuapare/bencodekit/pkg/printer"
	"github.com/spf13/pflag"
)

// formatValue adapts printer.Format to pflag so bad names fail at parse
// time with the list of valid formats.
type formatValue struct {
	target *printer.Format
}

func (f formatValue) String() string {
	if f.target == nil {
		return ""
	}
	return string(*f.target)
}

func (f formatValue) Set(s string) error {
	format, err := printer.ParseFormat(s)
	if err != nil {
		return err
	}
	*f.target = format
	return nil
}

func (formatValue) Type() string { return "format" }

// printerFlags returns the flags shared by commands that render documents,
// bound to opts. name is the flag that selects the format.
func printerFlags(opts *printer.Options, name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("printer", pflag.ContinueOnError)
	fs.Var(formatValue{target: &opts.Format}, name, "Output format (text, json, yaml, cbor)")
	fs.IntVar(&opts.IndentSize, "indent", opts.IndentSize, "Spaces per indent level")
	fs.IntVar(&opts.MaxDepth, "depth", opts.MaxDepth, "Levels to expand in text output (0 = all)")
	fs.IntVar(&opts.MaxValueBytes, "max-bytes", opts.MaxValueBytes, "Binary bytes shown in text output (0 = all)")
	fs.BoolVar(&opts.ShowTypes, "types", opts.ShowTypes, "Show value kinds in text output")
	return fs
}
