package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/bencodekit/pkg/ast"
)

// printText writes v as an indented tree. Containers at the root print
// their children at depth 0; a scalar root prints on a single line.
func (p *Printer) printText(v ast.Value) error {
	if !v.IsList() && !v.IsDictionary() {
		_, err := fmt.Fprintf(p.writer, "%s\n", p.scalarText(v))
		return err
	}
	return p.printChildrenText(v, 0)
}

func (p *Printer) printChildrenText(v ast.Value, depth int) error {
	if v.IsList() {
		for i, item := range v.List() {
			if err := p.printEntryText(fmt.Sprintf("[%d]", i), item, depth); err != nil {
				return err
			}
		}
		return nil
	}
	for key, val := range v.(*ast.Dictionary).All() {
		if err := p.printEntryText(keyText(key), val, depth); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printEntryText(label string, v ast.Value, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)
	typ := ""
	if p.opts.ShowTypes {
		typ = " [" + v.Kind().String() + "]"
	}

	if !v.IsList() && !v.IsDictionary() {
		_, err := fmt.Fprintf(p.writer, "%s%s%s: %s\n", indent, label, typ, p.scalarText(v))
		return err
	}

	switch {
	case v.Len() == 0:
		empty := "[]"
		if v.IsDictionary() {
			empty = "{}"
		}
		_, err := fmt.Fprintf(p.writer, "%s%s%s: %s\n", indent, label, typ, empty)
		return err
	case p.opts.MaxDepth > 0 && depth+1 >= p.opts.MaxDepth:
		_, err := fmt.Fprintf(p.writer, "%s%s%s: %s\n", indent, label, typ, summary(v))
		return err
	}

	if _, err := fmt.Fprintf(p.writer, "%s%s%s:\n", indent, label, typ); err != nil {
		return err
	}
	return p.printChildrenText(v, depth+1)
}

// scalarText renders an integer or byte string. Text is quoted; binary data
// is shown as hex, truncated to MaxValueBytes.
func (p *Printer) scalarText(v ast.Value) string {
	if v.IsInteger() {
		return fmt.Sprintf("%d", v.Int())
	}
	if s, ok := v.Text(); ok {
		return fmt.Sprintf("%q", s)
	}
	data, _ := v.Bytes()
	maxBytes := p.opts.MaxValueBytes
	if maxBytes == 0 {
		maxBytes = len(data)
	}
	displayLen := min(len(data), maxBytes)
	truncated := ""
	if len(data) > maxBytes {
		truncated = fmt.Sprintf(" (truncated, %d total bytes)", len(data))
	}
	return fmt.Sprintf("<%d bytes> %X%s", len(data), data[:displayLen], truncated)
}

func summary(v ast.Value) string {
	if v.IsList() {
		return fmt.Sprintf("[... %d items]", v.Len())
	}
	return fmt.Sprintf("{... %d entries}", v.Len())
}

// keyText prints keys bare when they are plain text and quoted otherwise.
func keyText(key string) string {
	s, ok := ast.Text(key).Text()
	if ok && s != "" && !strings.ContainsAny(s, ":\n\"") && strings.TrimSpace(s) == s {
		return s
	}
	return fmt.Sprintf("%q", key)
}
