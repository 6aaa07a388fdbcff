package reader

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/joshuapare/bencodekit/internal/buf"
	"github.com/joshuapare/bencodekit/internal/format"
	"github.com/joshuapare/bencodekit/pkg/ast"
	"github.com/joshuapare/bencodekit/pkg/types"
)

// byteSource is what the parser reads from: bulk reads for string payloads
// and single bytes for dispatch and literals.
type byteSource interface {
	io.Reader
	io.ByteReader
}

// sizedSource is implemented by in-memory sources (bytes.Reader,
// strings.Reader, bytes.Buffer) that know how many bytes remain.
type sizedSource interface {
	Len() int
}

// Decoder reads bencode values from a byte stream.
type Decoder struct {
	src   byteSource
	sized sizedSource // nil when the source cannot report its size
	opts  Options

	off   int64 // bytes consumed so far
	start int64 // offset of the value being decoded

	scratch []byte // literal buffer, reused across values

	rootFields map[string]Span // value spans of the root dictionary's keys
}

// Span is a half-open byte range [Start, End) of the source.
type Span struct {
	Start, End int64
}

// NewDecoder returns a Decoder reading from r. When r does not implement
// io.ByteReader it is wrapped in a bufio.Reader, which may read past the end
// of the last decoded value.
func NewDecoder(r io.Reader, opts Options) *Decoder {
	d := &Decoder{opts: opts}
	if s, ok := r.(sizedSource); ok {
		d.sized = s
	}
	if bs, ok := r.(byteSource); ok {
		d.src = bs
	} else {
		d.src = bufio.NewReader(r)
	}
	return d
}

// Offset returns the number of bytes consumed from the source.
func (d *Decoder) Offset() int64 { return d.off }

// Decode reads the next complete value. It returns io.EOF, unwrapped, when
// the source is exhausted before the first byte of a value; running out of
// input anywhere else is a format error.
func (d *Decoder) Decode() (ast.Value, error) {
	d.start = d.off
	d.rootFields = nil
	c, err := d.src.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, types.IOError(d.off, err)
	}
	d.off++
	if c == format.End {
		return nil, types.FormatError(d.off-1, "unexpected end marker outside a list or dictionary", "", nil)
	}
	return d.value(c, 0)
}

// RootField returns where the value of key sits in the source when the last
// decoded value was a dictionary. A repeated key reports its last
// occurrence, the one the decoded dictionary keeps.
func (d *Decoder) RootField(key string) (Span, bool) {
	sp, ok := d.rootFields[key]
	return sp, ok
}

// DecodeBytes decodes the single value held by data. In strict mode any
// bytes after the value are an error; otherwise they are ignored.
func DecodeBytes(data []byte, opts Options) (ast.Value, error) {
	v, _, err := DecodeBytesDecoder(data, opts)
	return v, err
}

// DecodeBytesDecoder is DecodeBytes that also returns the decoder, whose
// RootField spans index into data.
func DecodeBytesDecoder(data []byte, opts Options) (ast.Value, *Decoder, error) {
	r := bytes.NewReader(data)
	d := NewDecoder(r, opts)
	v, err := d.Decode()
	if errors.Is(err, io.EOF) {
		return nil, nil, types.FormatError(0, "unexpected end of input", "", nil)
	}
	if err != nil {
		return nil, nil, err
	}
	if opts.Strict && r.Len() > 0 {
		return nil, nil, types.FormatError(d.off, fmt.Sprintf("%d trailing bytes after root value", r.Len()), "", nil)
	}
	return v, d, nil
}

// value decodes the value whose dispatch byte c has already been consumed.
// depth is the nesting level of the enclosing container (0 at top level).
func (d *Decoder) value(c byte, depth int) (ast.Value, error) {
	switch {
	case c == format.IntegerStart:
		return d.integer()
	case c == format.ListStart:
		return d.list(depth + 1)
	case c == format.DictionaryStart:
		return d.dictionary(depth + 1)
	case format.IsDigit(c) || c == format.Minus:
		b, err := d.byteString(c)
		if err != nil {
			return nil, err
		}
		return ast.ByteString(b), nil
	case c == format.End:
		// Callers treat 'e' as a terminator before getting here.
		return nil, types.FormatError(d.off-1, "unexpected end marker", "", nil)
	default:
		return nil, types.FormatError(d.off-1, "invalid value type byte", string([]byte{c}), nil)
	}
}

func (d *Decoder) integer() (ast.Value, error) {
	at := d.off - 1
	lit, err := d.literal(nil, format.End, format.MaxIntegerLiteralLen, at)
	if err != nil {
		return nil, err
	}
	v, perr := format.ParseInteger(lit, d.opts.Strict)
	if perr != nil {
		return nil, types.FormatError(at, "invalid integer", string(lit), perr)
	}
	return ast.Integer(v), nil
}

func (d *Decoder) list(depth int) (ast.Value, error) {
	at := d.off - 1
	if err := d.opts.Limits.CheckDepth(depth); err != nil {
		return nil, types.LimitError(at, err)
	}
	items := ast.List{}
	for {
		c, err := d.readByte()
		if err != nil {
			return nil, err
		}
		if c == format.End {
			return items, nil
		}
		if err := d.opts.Limits.CheckElements(len(items) + 1); err != nil {
			return nil, types.LimitError(at, err)
		}
		v, err := d.value(c, depth)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
}

func (d *Decoder) dictionary(depth int) (ast.Value, error) {
	at := d.off - 1
	if err := d.opts.Limits.CheckDepth(depth); err != nil {
		return nil, types.LimitError(at, err)
	}
	var entries []ast.Entry
	for {
		c, err := d.readByte()
		if err != nil {
			return nil, err
		}
		if c == format.End {
			return ast.NewDictionary(entries...), nil
		}
		keyAt := d.off - 1
		if !format.IsDigit(c) && c != format.Minus {
			return nil, types.FormatError(keyAt, "dictionary key is not a byte string", string([]byte{c}), nil)
		}
		key, err := d.byteString(c)
		if err != nil {
			return nil, err
		}
		if d.opts.Strict && len(entries) > 0 && string(key) <= entries[len(entries)-1].Key {
			return nil, types.FormatError(keyAt, "dictionary key out of order", string(key), nil)
		}
		if err := d.opts.Limits.CheckElements(len(entries) + 1); err != nil {
			return nil, types.LimitError(at, err)
		}

		c, err = d.readByte()
		if err != nil {
			return nil, err
		}
		if c == format.End {
			return nil, types.FormatError(d.off-1, "missing value for dictionary key", string(key), nil)
		}
		valueAt := d.off - 1
		v, err := d.value(c, depth)
		if err != nil {
			return nil, err
		}
		if depth == 1 {
			if d.rootFields == nil {
				d.rootFields = make(map[string]Span)
			}
			d.rootFields[string(key)] = Span{Start: valueAt, End: d.off}
		}
		entries = append(entries, ast.Entry{Key: string(key), Value: v})
	}
}

// byteString decodes <len>:<payload>; first is the already consumed first
// byte of the length prefix.
func (d *Decoder) byteString(first byte) ([]byte, error) {
	at := d.off - 1
	lit, err := d.literal([]byte{first}, format.LengthSeparator, format.MaxLengthLiteralLen, at)
	if err != nil {
		return nil, err
	}
	if lit[0] == format.Minus {
		return nil, types.FormatError(at, "negative string length", string(lit), nil)
	}
	n, perr := format.ParseLength(lit, d.opts.Strict)
	if perr != nil {
		return nil, types.FormatError(at, "invalid string length", string(lit), perr)
	}
	if err := d.opts.Limits.CheckString(n); err != nil {
		return nil, types.LimitError(at, err)
	}
	end, ok := buf.AddOverflowSafe(d.off-d.start, n)
	if !ok {
		end = math.MaxInt64
	}
	if !buf.WithinLimit(end, d.opts.Limits.MaxTotalSize) {
		return nil, types.LimitError(at, d.opts.Limits.CheckTotalSize(end))
	}
	if d.sized != nil && !buf.FitsRemaining(n, int64(d.sized.Len())) {
		return nil, types.FormatError(at,
			fmt.Sprintf("string declares %d bytes but only %d remain", n, d.sized.Len()), string(lit), nil)
	}
	return d.payload(n, at)
}

// payload reads exactly n bytes. Small payloads go into one buffer sized up
// front; larger ones grow as data arrives so an unchecked length prefix
// cannot reserve memory the input never backs.
func (d *Decoder) payload(n, at int64) ([]byte, error) {
	if n <= format.SmallStringLen {
		p := make([]byte, n)
		got, err := io.ReadFull(d.src, p)
		d.off += int64(got)
		if err != nil {
			return nil, d.shortRead(err, at, n, int64(got))
		}
		return p, nil
	}
	var b bytes.Buffer
	b.Grow(format.SmallStringLen)
	got, err := io.CopyN(&b, d.src, n)
	d.off += got
	if err != nil {
		return nil, d.shortRead(err, at, n, got)
	}
	return b.Bytes(), nil
}

func (d *Decoder) shortRead(err error, at, want, got int64) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return types.FormatError(at, fmt.Sprintf("string truncated: declared %d bytes, got %d", want, got), "", nil)
	}
	return types.IOError(d.off, err)
}

// literal reads bytes up to and including term, returning the bytes before
// term appended to prefix. The result aliases the decoder's scratch buffer
// and is only valid until the next call.
func (d *Decoder) literal(prefix []byte, term byte, maxLen int, at int64) ([]byte, error) {
	d.scratch = append(d.scratch[:0], prefix...)
	for {
		c, err := d.readByte()
		if err != nil {
			return nil, err
		}
		if c == term {
			return d.scratch, nil
		}
		if len(d.scratch) >= maxLen {
			return nil, types.FormatError(at, "numeric literal too long", string(d.scratch), nil)
		}
		d.scratch = append(d.scratch, c)
	}
}

// readByte consumes one byte. End of input is a format error here because
// every caller is in the middle of a value.
func (d *Decoder) readByte() (byte, error) {
	c, err := d.src.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, types.FormatError(d.off, "unexpected end of input", "", nil)
		}
		return 0, types.IOError(d.off, err)
	}
	d.off++
	if !buf.WithinLimit(d.off-d.start, d.opts.Limits.MaxTotalSize) {
		return 0, types.LimitError(d.off-1, d.opts.Limits.CheckTotalSize(d.off-d.start))
	}
	return c, nil
}
