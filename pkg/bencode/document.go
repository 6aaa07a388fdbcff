package bencode

import (
	"bytes"

	"github.com/joshuapare/bencodekit/internal/mmfile"
	"github.com/joshuapare/bencodekit/internal/reader"
	"github.com/joshuapare/bencodekit/pkg/ast"
	"github.com/joshuapare/bencodekit/pkg/types"
)

// Document is a decoded root value together with the exact source bytes of
// selected fields of the root dictionary. A leniently decoded field may
// encode differently from its raw bytes, so hashes over a field (such as a
// torrent's info hash) should be taken over Raw.
type Document struct {
	Root ast.Value
	raw  map[string][]byte
}

// Raw returns a copy of the source bytes of the root dictionary's value for
// key. ok is false when key was not requested or is not in the root.
func (d *Document) Raw(key string) ([]byte, bool) {
	b, ok := d.raw[key]
	if !ok {
		return nil, false
	}
	return bytes.Clone(b), true
}

// DecodeDocument decodes data using opts and keeps the raw bytes of the
// root dictionary fields named by keys.
func DecodeDocument(data []byte, opts Options, keys ...string) (*Document, error) {
	root, d, err := reader.DecodeBytesDecoder(data, opts)
	if err != nil {
		return nil, err
	}
	doc := &Document{Root: root, raw: make(map[string][]byte, len(keys))}
	for _, key := range keys {
		if sp, ok := d.RootField(key); ok {
			doc.raw[key] = bytes.Clone(data[sp.Start:sp.End])
		}
	}
	return doc, nil
}

// DecodeDocumentFile maps the file at path and decodes it like
// DecodeDocument. The kept fields are copied out before the mapping is
// released.
func DecodeDocumentFile(path string, opts Options, keys ...string) (*Document, error) {
	data, release, err := mmfile.Map(path)
	if err != nil {
		return nil, types.IOError(types.NoOffset, err)
	}
	defer func() { _ = release() }()
	return DecodeDocument(data, opts, keys...)
}
