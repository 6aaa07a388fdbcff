// Package reader implements the bencode decoder: a single forward pass of
// recursive descent that dispatches on one byte per value and builds an
// ast.Value tree bottom-up.
//
// The exported entry points are wrapped by pkg/bencode; callers outside the
// module should use that package instead.
//
// Every failure is a *types.Error carrying the byte offset where the
// offending construct starts. Malformed input yields ErrKindFormat, a failing
// source yields ErrKindIO, and a configured Limits bound yields ErrKindLimit.
// A decode never returns a partial tree.
package reader
