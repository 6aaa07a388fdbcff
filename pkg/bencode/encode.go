package bencode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/joshuapare/bencodekit/internal/format"
	"github.com/joshuapare/bencodekit/pkg/ast"
	"github.com/joshuapare/bencodekit/pkg/types"
)

// ListProducer writes the elements of a list.
type ListProducer interface {
	EncodeList(e *Encoder) error
}

// DictionaryProducer registers the fields of a dictionary.
type DictionaryProducer interface {
	EncodeFields(f *Fields) error
}

// ListFunc adapts a function to ListProducer.
type ListFunc func(e *Encoder) error

// EncodeList calls fn(e).
func (fn ListFunc) EncodeList(e *Encoder) error { return fn(e) }

// DictionaryFunc adapts a function to DictionaryProducer.
type DictionaryFunc func(f *Fields) error

// EncodeFields calls fn(f).
func (fn DictionaryFunc) EncodeFields(f *Fields) error { return fn(f) }

// Encoder writes canonical bencode to an io.Writer. The first sink failure
// is sticky: every later write returns it without touching the sink.
type Encoder struct {
	w       io.Writer
	scratch []byte
	err     error
}

// NewEncoder returns an Encoder writing to w. Writes are not buffered.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, scratch: make([]byte, 0, 32)}
}

// WriteInteger writes i<v>e.
func (e *Encoder) WriteInteger(v int64) error {
	e.scratch = format.AppendInteger(e.scratch[:0], v)
	return e.write(e.scratch)
}

// WriteBytes writes <len>:<b>.
func (e *Encoder) WriteBytes(b []byte) error {
	e.scratch = format.AppendStringHeader(e.scratch[:0], len(b))
	if err := e.write(e.scratch); err != nil {
		return err
	}
	return e.write(b)
}

// WriteText writes the UTF-8 bytes of s as a byte string.
func (e *Encoder) WriteText(s string) error {
	e.scratch = format.AppendStringHeader(e.scratch[:0], len(s))
	if err := e.write(e.scratch); err != nil {
		return err
	}
	return e.writeString(s)
}

// WriteList writes 'l', lets p write the elements, then writes 'e'.
func (e *Encoder) WriteList(p ListProducer) error {
	if err := e.writeByte(format.ListStart); err != nil {
		return err
	}
	if err := p.EncodeList(e); err != nil {
		return err
	}
	return e.writeByte(format.End)
}

// WriteDictionary collects the fields registered by p and writes them in
// ascending key order. Nothing reaches the sink until p has returned, so a
// producer error leaves no partial dictionary behind.
func (e *Encoder) WriteDictionary(p DictionaryProducer) error {
	var f Fields
	if err := p.EncodeFields(&f); err != nil {
		return err
	}
	return f.emit(e)
}

// WriteValue writes a Value tree. Absent cannot be encoded anywhere in the
// tree except as a dictionary value, where it means the key is not present.
func (e *Encoder) WriteValue(v ast.Value) error {
	if v == nil || !v.Exists() {
		return types.EncodeError("cannot encode absent value", nil)
	}
	switch {
	case v.IsInteger():
		return e.WriteInteger(v.Int())
	case v.IsByteString():
		b, _ := v.Bytes()
		return e.WriteBytes(b)
	case v.IsList():
		return e.WriteList(ListFunc(func(e *Encoder) error {
			for _, item := range v.List() {
				if err := e.WriteValue(item); err != nil {
					return err
				}
			}
			return nil
		}))
	case v.IsDictionary():
		d, ok := v.(*ast.Dictionary)
		if !ok {
			return types.EncodeError(fmt.Sprintf("unsupported dictionary type %T", v), nil)
		}
		// Entries are already sorted and unique.
		if err := e.writeByte(format.DictionaryStart); err != nil {
			return err
		}
		for key, val := range d.All() {
			if err := e.WriteText(key); err != nil {
				return err
			}
			if err := e.WriteValue(val); err != nil {
				return err
			}
		}
		return e.writeByte(format.End)
	default:
		return types.EncodeError(fmt.Sprintf("unsupported value kind %s", v.Kind()), nil)
	}
}

func (e *Encoder) write(p []byte) error {
	if e.err != nil {
		return e.err
	}
	if _, err := e.w.Write(p); err != nil {
		e.err = types.EncodeError("write failed", err)
	}
	return e.err
}

func (e *Encoder) writeString(s string) error {
	if e.err != nil {
		return e.err
	}
	if _, err := io.WriteString(e.w, s); err != nil {
		e.err = types.EncodeError("write failed", err)
	}
	return e.err
}

func (e *Encoder) writeByte(c byte) error {
	e.scratch = append(e.scratch[:0], c)
	return e.write(e.scratch)
}

// EncodeDictionary encodes the dictionary described by p.
func EncodeDictionary(p DictionaryProducer) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).WriteDictionary(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Marshal returns the canonical encoding of v.
func Marshal(v ast.Value) ([]byte, error) {
	var buf bytes.Buffer
	if v != nil {
		buf.Grow(int(ast.EncodedSize(v)))
	}
	if err := NewEncoder(&buf).WriteValue(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
