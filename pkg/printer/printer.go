// Package printer renders decoded bencode trees for people and for other
// tools: an indented text tree, JSON, YAML or CBOR.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/bencodekit/pkg/ast"
)

const (
	DefaultIndentSize    = 2
	DefaultMaxDepth      = 0
	DefaultMaxValueBytes = 32
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs a human-readable indented tree.
	FormatText Format = "text"

	// FormatJSON outputs JSON. Binary strings become {"$binary": "<hex>"}.
	FormatJSON Format = "json"

	// FormatYAML outputs YAML. Binary strings use the !!binary tag.
	FormatYAML Format = "yaml"

	// FormatCBOR outputs deterministic CBOR with native byte strings.
	FormatCBOR Format = "cbor"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatCBOR}

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of %s)", s, formatList())
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Options controls printing behavior.
type Options struct {
	// Format specifies output format.
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text, JSON and
	// YAML).
	// Default: 2
	IndentSize int

	// MaxDepth limits how many container levels are expanded (text format
	// only; 0 = unlimited). Deeper containers are summarized.
	// Default: 0
	MaxDepth int

	// MaxValueBytes limits how many bytes of binary strings are displayed
	// (text format only). Set to 0 for no limit.
	// Default: 32
	MaxValueBytes int

	// ShowTypes adds the kind of each value (text format only).
	// Default: false
	ShowTypes bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:        FormatText,
		IndentSize:    DefaultIndentSize,
		MaxDepth:      DefaultMaxDepth,
		MaxValueBytes: DefaultMaxValueBytes,
	}
}

// Validate reports options no printer can honor.
func (o Options) Validate() error {
	switch {
	case o.IndentSize < 0:
		return fmt.Errorf("printer: negative indent size %d", o.IndentSize)
	case o.MaxDepth < 0:
		return fmt.Errorf("printer: negative max depth %d", o.MaxDepth)
	case o.MaxValueBytes < 0:
		return fmt.Errorf("printer: negative max value bytes %d", o.MaxValueBytes)
	}
	return nil
}

// Printer writes renderings of Value trees.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer writing to w.
//
// Example:
//
//	root, _ := bencode.DecodeFile("album.torrent")
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.Print(root.Field("info"))
func New(w io.Writer, opts Options) *Printer {
	return &Printer{writer: w, opts: opts}
}

// Print renders v in the configured format.
func (p *Printer) Print(v ast.Value) error {
	if v == nil || !v.Exists() {
		return fmt.Errorf("printer: nothing to print")
	}
	if err := p.opts.Validate(); err != nil {
		return err
	}
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(v)
	case FormatYAML:
		return p.printYAML(v)
	case FormatCBOR:
		return p.printCBOR(v)
	case FormatText, "":
		return p.printText(v)
	default:
		return fmt.Errorf("printer: unknown format %q", p.opts.Format)
	}
}

// PrintPath renders the value found at path below root (see ast.Lookup).
func (p *Printer) PrintPath(root ast.Value, path string) error {
	v := ast.Lookup(root, path)
	if !v.Exists() {
		return fmt.Errorf("printer: no value at %q", path)
	}
	return p.Print(v)
}
