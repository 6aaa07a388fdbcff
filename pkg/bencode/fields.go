package bencode

import (
	"maps"
	"slices"

	"github.com/joshuapare/bencodekit/internal/format"
	"github.com/joshuapare/bencodekit/pkg/ast"
)

// EmitFunc writes the value of one dictionary field.
type EmitFunc func(e *Encoder) error

// Fields collects the fields of a dictionary being encoded. Each field is
// held as a deferred EmitFunc; the Encoder runs them in ascending byte order
// of their keys once the producer returns. Registering a key twice keeps
// the last registration.
//
// Keys are raw bytes held in Go strings. The zero value is ready to use.
type Fields struct {
	emits map[string]EmitFunc
}

// Put registers emit as the writer of key's value.
func (f *Fields) Put(key string, emit EmitFunc) {
	if f.emits == nil {
		f.emits = make(map[string]EmitFunc)
	}
	f.emits[key] = emit
}

// Integer registers an integer field.
func (f *Fields) Integer(key string, v int64) {
	f.Put(key, func(e *Encoder) error { return e.WriteInteger(v) })
}

// Bytes registers a byte string field. b must not change before the
// dictionary is written.
func (f *Fields) Bytes(key string, b []byte) {
	f.Put(key, func(e *Encoder) error { return e.WriteBytes(b) })
}

// Text registers a byte string field holding the UTF-8 bytes of s.
func (f *Fields) Text(key, s string) {
	f.Put(key, func(e *Encoder) error { return e.WriteText(s) })
}

// List registers a list field whose elements p writes.
func (f *Fields) List(key string, p ListProducer) {
	f.Put(key, func(e *Encoder) error { return e.WriteList(p) })
}

// Dictionary registers a nested dictionary field.
func (f *Fields) Dictionary(key string, p DictionaryProducer) {
	f.Put(key, func(e *Encoder) error { return e.WriteDictionary(p) })
}

// Value registers a field holding v. An Absent (or nil) v removes key, so
// optional fields can be passed straight from a navigation lookup.
func (f *Fields) Value(key string, v ast.Value) {
	if v == nil || !v.Exists() {
		delete(f.emits, key)
		return
	}
	f.Put(key, func(e *Encoder) error { return e.WriteValue(v) })
}

// Len returns the number of distinct keys registered.
func (f *Fields) Len() int { return len(f.emits) }

func (f *Fields) emit(e *Encoder) error {
	if err := e.writeByte(format.DictionaryStart); err != nil {
		return err
	}
	for _, key := range slices.Sorted(maps.Keys(f.emits)) {
		if err := e.WriteText(key); err != nil {
			return err
		}
		if err := f.emits[key](e); err != nil {
			return err
		}
	}
	return e.writeByte(format.End)
}
