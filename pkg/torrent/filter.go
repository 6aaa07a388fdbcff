package torrent

import (
	"path"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// FileEnv is the environment a filter expression is evaluated against.
type FileEnv struct {
	Path   string `expr:"path"`   // segments joined with "/"
	Name   string `expr:"name"`   // last segment
	Ext    string `expr:"ext"`    // extension of name, with the dot
	Length int64  `expr:"length"` // size in bytes
	Depth  int    `expr:"depth"`  // number of segments
}

// NewFileEnv builds the filter environment of f.
func NewFileEnv(f File) FileEnv {
	return FileEnv{
		Path:   f.Join("/"),
		Name:   f.Name(),
		Ext:    path.Ext(f.Name()),
		Length: f.Length,
		Depth:  len(f.Path),
	}
}

// Filter selects files with a boolean expr-lang expression such as
//
//	ext == ".flac" && length > 10_000_000
//	path startsWith "cd1/" || depth == 1
type Filter struct {
	source  string
	program *vm.Program
}

// NewFilter compiles source. The empty expression matches every file.
func NewFilter(source string) (*Filter, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return &Filter{}, nil
	}
	program, err := expr.Compile(source, expr.Env(FileEnv{}), expr.AsBool())
	if err != nil {
		return nil, errors.WithHint(errors.Wrapf(err, "compile filter %q", source),
			"available fields: path, name, ext, length, depth")
	}
	return &Filter{source: source, program: program}, nil
}

// Match reports whether f satisfies the filter.
func (flt *Filter) Match(f File) (bool, error) {
	if flt.program == nil {
		return true, nil
	}
	out, err := expr.Run(flt.program, NewFileEnv(f))
	if err != nil {
		return false, errors.Wrapf(err, "evaluate filter on %s", f.Join("/"))
	}
	return out.(bool), nil
}

// Apply returns the files that satisfy the filter, in order.
func (flt *Filter) Apply(files []File) ([]File, error) {
	var out []File
	for _, f := range files {
		ok, err := flt.Match(f)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, f)
		}
	}
	return out, nil
}

// String returns the expression source.
func (flt *Filter) String() string { return flt.source }
