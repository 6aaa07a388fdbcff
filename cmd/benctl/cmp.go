package main

import (
	"bytes"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joshuapare/bencodekit/pkg/ast"
	"github.com/joshuapare/bencodekit/pkg/printer"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

var cmpContext int

func init() {
	cmd := newCmpCmd()
	cmd.Flags().IntVarP(&cmpContext, "context", "C", 2, "Unchanged lines shown around each change (-1 = all)")
	rootCmd.AddCommand(cmd)
}

func newCmpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmp <a> <b>",
		Short: "Compare two bencode files",
		Long: `The cmp command decodes two files and compares the trees. Documents that
decode to the same tree are equal even when their encodings differ, for
example in dictionary key order. Otherwise a line diff of the text
renderings is printed and the command exits with status 1.

Example:
  benctl cmp old.torrent new.torrent
  benctl cmp old.torrent new.torrent -C -1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCmp(args)
		},
	}
	return cmd
}

// cmpLine is one line of a line diff.
type cmpLine struct {
	op   diffmatchpatch.Operation
	text string
}

func runCmp(args []string) error {
	a, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	b, err := loadDocument(args[1])
	if err != nil {
		return err
	}

	if ast.Equal(a, b) {
		printInfo("%s and %s are equal\n", args[0], args[1])
		return nil
	}

	textA, err := renderText(a)
	if err != nil {
		return err
	}
	textB, err := renderText(b)
	if err != nil {
		return err
	}

	lines := diffLines(textA, textB)
	if jsonOut {
		out := make([]map[string]string, 0, len(lines))
		for _, l := range lines {
			if l.op != diffmatchpatch.DiffEqual {
				out = append(out, map[string]string{"op": opMarker(l.op), "line": l.text})
			}
		}
		if err := printJSON(out); err != nil {
			return err
		}
		return errDifferences
	}

	if !quiet {
		printInfo("--- %s\n+++ %s\n", args[0], args[1])
		printDiffLines(lines, cmpContext)
	}
	return errDifferences
}

func renderText(v ast.Value) (string, error) {
	opts := printer.DefaultOptions()
	opts.MaxValueBytes = 0
	var buf bytes.Buffer
	if err := printer.New(&buf, opts).Print(v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// diffLines returns a line-level diff of a and b.
func diffLines(a, b string) []cmpLine {
	dmp := diffmatchpatch.New()
	charsA, charsB, lineArray := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(charsA, charsB, false), lineArray)

	var lines []cmpLine
	for _, d := range diffs {
		for _, text := range strings.SplitAfter(d.Text, "\n") {
			if text == "" {
				continue
			}
			lines = append(lines, cmpLine{op: d.Type, text: strings.TrimSuffix(text, "\n")})
		}
	}
	return lines
}

// printDiffLines prints changed lines with up to context unchanged lines
// around them. A negative context prints everything.
func printDiffLines(lines []cmpLine, context int) {
	keep := make([]bool, len(lines))
	for i, l := range lines {
		if l.op == diffmatchpatch.DiffEqual && context >= 0 {
			continue
		}
		lo, hi := i-max(context, 0), i+max(context, 0)
		if context < 0 {
			lo, hi = i, i
		}
		for j := max(lo, 0); j <= min(hi, len(lines)-1); j++ {
			keep[j] = true
		}
	}

	add := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	skipped := false
	for i, l := range lines {
		if !keep[i] {
			skipped = true
			continue
		}
		if skipped {
			color.New(color.FgCyan).Fprintln(os.Stdout, "@@")
			skipped = false
		}
		switch l.op {
		case diffmatchpatch.DiffInsert:
			add.Fprintln(os.Stdout, "+"+l.text)
		case diffmatchpatch.DiffDelete:
			del.Fprintln(os.Stdout, "-"+l.text)
		default:
			os.Stdout.WriteString(" " + l.text + "\n")
		}
	}
}

func opMarker(op diffmatchpatch.Operation) string {
	switch op {
	case diffmatchpatch.DiffInsert:
		return "+"
	case diffmatchpatch.DiffDelete:
		return "-"
	default:
		return " "
	}
}
