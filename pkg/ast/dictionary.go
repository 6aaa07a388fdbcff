package ast

import (
	"iter"
	"slices"
	"sort"
	"strings"

	"github.com/joshuapare/bencodekit/pkg/types"
)

// Entry is one key/value pair of a Dictionary. Key holds raw bytes; Go
// strings compare byte-lexicographically, which is the canonical order.
type Entry struct {
	Key   string
	Value Value
}

// Dictionary is a bencode dictionary. Entries are kept sorted by key with no
// duplicates, so iteration order is the canonical encoding order.
type Dictionary struct {
	entries []Entry
}

// NewDictionary builds a Dictionary from entries given in any order. When a
// key repeats, the last entry wins. Entries whose value is Absent (or nil)
// are dropped.
func NewDictionary(entries ...Entry) *Dictionary {
	sorted := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Value == nil || !e.Value.Exists() {
			continue
		}
		sorted = append(sorted, e)
	}
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		return strings.Compare(a.Key, b.Key)
	})
	out := sorted[:0]
	for _, e := range sorted {
		if n := len(out); n > 0 && out[n-1].Key == e.Key {
			out[n-1] = e
			continue
		}
		out = append(out, e)
	}
	return &Dictionary{entries: out}
}

// Entries returns a copy of the entries in ascending key order.
func (d *Dictionary) Entries() []Entry { return slices.Clone(d.entries) }

// All yields the entries in ascending key order without copying them.
func (d *Dictionary) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, e := range d.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

func (d *Dictionary) lookup(name string) (int, bool) {
	i := sort.Search(len(d.entries), func(i int) bool { return d.entries[i].Key >= name })
	return i, i < len(d.entries) && d.entries[i].Key == name
}

// Has reports whether the dictionary holds name.
func (d *Dictionary) Has(name string) bool {
	_, ok := d.lookup(name)
	return ok
}

func (*Dictionary) Kind() types.Kind { return types.KindDictionary }
func (*Dictionary) Exists() bool { return true }
func (*Dictionary) IsInteger() bool { return false }
func (*Dictionary) IsByteString() bool { return false }
func (*Dictionary) IsList() bool { return false }
func (*Dictionary) IsDictionary() bool { return true }
func (*Dictionary) Int() int64 { return 0 }
func (*Dictionary) Text() (string, bool) { return "", false }
func (*Dictionary) Bytes() ([]byte, bool) { return nil, false }
func (*Dictionary) List() []Value { return nil }
func (*Dictionary) Index(int) Value { return Absent }
func (d *Dictionary) Len() int { return len(d.entries) }

func (d *Dictionary) Field(name string) Value {
	if i, ok := d.lookup(name); ok {
		return d.entries[i].Value
	}
	return Absent
}

func (d *Dictionary) FieldNames() []string {
	names := make([]string, len(d.entries))
	for i, e := range d.entries {
		names[i] = e.Key
	}
	return names
}

func (d *Dictionary) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range d.entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(ByteString(e.Key).String())
		sb.WriteString(": ")
		sb.WriteString(e.Value.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// DictionaryBuilder assembles a Dictionary from fields set in any order.
// Setting a key twice keeps the last value.
type DictionaryBuilder struct {
	fields map[string]Value
}

// NewDictionaryBuilder returns an empty builder.
func NewDictionaryBuilder() *DictionaryBuilder {
	return &DictionaryBuilder{fields: make(map[string]Value)}
}

// Set stores v under key. Setting Absent removes the key.
func (b *DictionaryBuilder) Set(key string, v Value) *DictionaryBuilder {
	if v == nil || !v.Exists() {
		delete(b.fields, key)
		return b
	}
	b.fields[key] = v
	return b
}

// SetInt stores an Integer under key.
func (b *DictionaryBuilder) SetInt(key string, v int64) *DictionaryBuilder {
	return b.Set(key, Int(v))
}

// SetText stores the UTF-8 bytes of s under key.
func (b *DictionaryBuilder) SetText(key, s string) *DictionaryBuilder {
	return b.Set(key, Text(s))
}

// Len returns the number of distinct keys set so far.
func (b *DictionaryBuilder) Len() int { return len(b.fields) }

// Build returns the sorted Dictionary. The builder may be reused afterwards.
func (b *DictionaryBuilder) Build() *Dictionary {
	entries := make([]Entry, 0, len(b.fields))
	for k, v := range b.fields {
		entries = append(entries, Entry{Key: k, Value: v})
	}
	return NewDictionary(entries...)
}

