package reader

import "github.com/joshuapare/bencodekit/pkg/ast"

// Options configures a Decoder. The zero value decodes any well-formed input
// without resource bounds, accepting non-canonical documents.
type Options struct {
	// Limits bounds nesting depth, string length, container size and total
	// document size. Zero fields are unlimited.
	Limits ast.Limits

	// Strict rejects input a canonical encoder would never produce: integer
	// and length literals with leading zeros, negative zero, dictionary keys
	// that are not strictly ascending, and (for whole-buffer decodes) bytes
	// after the root value.
	Strict bool
}

// DefaultOptions returns the options used for untrusted input: default
// limits, lenient grammar.
func DefaultOptions() Options {
	return Options{Limits: ast.DefaultLimits()}
}

// StrictOptions returns default limits with canonical-form checking.
func StrictOptions() Options {
	return Options{Limits: ast.DefaultLimits(), Strict: true}
}
