package bencode

import (
	"github.com/joshuapare/bencodekit/internal/mmfile"
	"github.com/joshuapare/bencodekit/internal/reader"
	"github.com/joshuapare/bencodekit/internal/writer"
	"github.com/joshuapare/bencodekit/pkg/ast"
	"github.com/joshuapare/bencodekit/pkg/types"
)

// Sink receives one complete encoded document.
type Sink = writer.Sink

// DecodeFile maps the file at path and decodes the value it holds.
func DecodeFile(path string) (ast.Value, error) {
	return DecodeFileWithOptions(path, Options{})
}

// DecodeFileWithOptions maps the file at path and decodes it using opts.
// The returned tree owns its bytes; the mapping is released before return.
func DecodeFileWithOptions(path string, opts Options) (ast.Value, error) {
	data, release, err := mmfile.Map(path)
	if err != nil {
		return nil, types.IOError(types.NoOffset, err)
	}
	defer func() { _ = release() }()
	return reader.DecodeBytes(data, opts)
}

// WriteFile encodes v and replaces the file at path atomically.
func WriteFile(path string, v ast.Value) error {
	return WriteTo(&writer.FileWriter{Path: path}, v)
}

// WriteTo encodes v and hands the complete document to sink.
func WriteTo(sink Sink, v ast.Value) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}
	if err := sink.WriteDocument(data); err != nil {
		return types.EncodeError("write document", err)
	}
	return nil
}
