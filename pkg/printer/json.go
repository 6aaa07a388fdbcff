package printer

import (
	"encoding/json"
	"strings"

	"github.com/joshuapare/bencodekit/pkg/ast"
)

// printJSON writes v as indented JSON. encoding/json sorts map keys, which
// keeps UTF-8 dictionary keys in byte order.
func (p *Printer) printJSON(v ast.Value) error {
	enc := json.NewEncoder(p.writer)
	enc.SetEscapeHTML(false)
	if p.opts.IndentSize > 0 {
		enc.SetIndent("", strings.Repeat(" ", p.opts.IndentSize))
	}
	return enc.Encode(ToNative(v))
}
