package bencode

import (
	"errors"
	"io"

	"github.com/joshuapare/bencodekit/internal/reader"
	"github.com/joshuapare/bencodekit/pkg/ast"
	"github.com/joshuapare/bencodekit/pkg/types"
)

// Options configures decoding. The zero value is unbounded and lenient.
type Options = reader.Options

// Decoder reads a sequence of values from a stream.
type Decoder = reader.Decoder

// DefaultOptions returns default limits with lenient grammar.
func DefaultOptions() Options { return reader.DefaultOptions() }

// StrictOptions returns default limits with canonical-form checking.
func StrictOptions() Options { return reader.StrictOptions() }

// NewDecoder returns a Decoder reading from r. Its Decode method returns
// io.EOF once the stream ends cleanly between values.
func NewDecoder(r io.Reader, opts Options) *Decoder {
	return reader.NewDecoder(r, opts)
}

// Decode reads one value from r. Running out of input before a value
// starts is a format error.
func Decode(r io.Reader) (ast.Value, error) {
	return DecodeWithOptions(r, Options{})
}

// DecodeWithOptions reads one value from r using opts.
func DecodeWithOptions(r io.Reader, opts Options) (ast.Value, error) {
	v, err := reader.NewDecoder(r, opts).Decode()
	if errors.Is(err, io.EOF) {
		return nil, types.FormatError(0, "unexpected end of input", "", nil)
	}
	return v, err
}

// DecodeBytes decodes the value held by data. Bytes after the value are
// ignored.
func DecodeBytes(data []byte) (ast.Value, error) {
	return reader.DecodeBytes(data, Options{})
}

// DecodeBytesWithOptions decodes data using opts. With opts.Strict, bytes
// after the value are an error.
func DecodeBytesWithOptions(data []byte, opts Options) (ast.Value, error) {
	return reader.DecodeBytes(data, opts)
}
