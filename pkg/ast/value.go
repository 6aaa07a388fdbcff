package ast

import (
	"encoding/hex"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/joshuapare/bencodekit/pkg/types"
)

// Value is a node of a bencode document. Every method is total: queries that
// do not apply to the receiver's kind return Absent or a zero default.
type Value interface {
	// Kind returns the variant tag of the value.
	Kind() types.Kind
	// Exists is false only for Absent.
	Exists() bool

	IsInteger() bool
	IsByteString() bool
	IsList() bool
	IsDictionary() bool

	// Int returns the integer, or 0 when the value is not an Integer.
	Int() int64
	// Text returns the byte string decoded as UTF-8. It reports false when
	// the value is not a ByteString or its bytes are not valid UTF-8.
	Text() (string, bool)
	// Bytes returns the raw byte string, or nil and false for other kinds.
	Bytes() ([]byte, bool)
	// List returns the elements of a List, or an empty slice.
	List() []Value
	// Index returns the i-th element of a List, or Absent when the value is
	// not a List or i is out of range.
	Index(i int) Value
	// Field returns the value stored under name in a Dictionary, or Absent.
	Field(name string) Value
	// FieldNames returns the keys of a Dictionary in ascending byte order,
	// or an empty slice.
	FieldNames() []string
	// Len returns the number of elements of a List or Dictionary, the byte
	// length of a ByteString, and 0 otherwise.
	Len() int

	String() string
}

// Absent is the sentinel for "no such field or element". It never appears
// inside a tree and is never serialized.
var Absent Value = absent{}

// -----------------------------------------------------------------------------
// Absent
// -----------------------------------------------------------------------------

type absent struct{}

func (absent) Kind() types.Kind { return types.KindAbsent }
func (absent) Exists() bool { return false }
func (absent) IsInteger() bool { return false }
func (absent) IsByteString() bool { return false }
func (absent) IsList() bool { return false }
func (absent) IsDictionary() bool { return false }
func (absent) Int() int64 { return 0 }
func (absent) Text() (string, bool) { return "", false }
func (absent) Bytes() ([]byte, bool) { return nil, false }
func (absent) List() []Value { return nil }
func (absent) Index(int) Value { return Absent }
func (absent) Field(string) Value { return Absent }
func (absent) FieldNames() []string { return nil }
func (absent) Len() int { return 0 }
func (absent) String() string { return "<absent>" }

// -----------------------------------------------------------------------------
// Integer
// -----------------------------------------------------------------------------

// Integer is a bencode integer.
type Integer int64

// Int returns an Integer value.
func Int(v int64) Value { return Integer(v) }

func (Integer) Kind() types.Kind { return types.KindInteger }
func (Integer) Exists() bool { return true }
func (Integer) IsInteger() bool { return true }
func (Integer) IsByteString() bool { return false }
func (Integer) IsList() bool { return false }
func (Integer) IsDictionary() bool { return false }
func (i Integer) Int() int64 { return int64(i) }
func (Integer) Text() (string, bool) { return "", false }
func (Integer) Bytes() ([]byte, bool) { return nil, false }
func (Integer) List() []Value { return nil }
func (Integer) Index(int) Value { return Absent }
func (Integer) Field(string) Value { return Absent }
func (Integer) FieldNames() []string { return nil }
func (Integer) Len() int { return 0 }
func (i Integer) String() string { return strconv.FormatInt(int64(i), 10) }

// -----------------------------------------------------------------------------
// ByteString
// -----------------------------------------------------------------------------

// ByteString is a bencode byte string.
type ByteString []byte

// Bytes returns a ByteString value holding b. The slice is not copied.
func Bytes(b []byte) Value { return ByteString(b) }

// Text returns a ByteString value holding the UTF-8 bytes of s.
func Text(s string) Value { return ByteString(s) }

func (ByteString) Kind() types.Kind { return types.KindByteString }
func (ByteString) Exists() bool { return true }
func (ByteString) IsInteger() bool { return false }
func (ByteString) IsByteString() bool { return true }
func (ByteString) IsList() bool { return false }
func (ByteString) IsDictionary() bool { return false }
func (ByteString) Int() int64 { return 0 }
func (ByteString) List() []Value { return nil }
func (ByteString) Index(int) Value { return Absent }
func (ByteString) Field(string) Value { return Absent }
func (ByteString) FieldNames() []string { return nil }
func (s ByteString) Len() int { return len(s) }

func (s ByteString) Text() (string, bool) {
	if !utf8.Valid(s) {
		return "", false
	}
	return string(s), true
}

func (s ByteString) Bytes() ([]byte, bool) {
	if s == nil {
		return []byte{}, true
	}
	return s, true
}

// String quotes valid UTF-8 text and renders binary data as hex.
func (s ByteString) String() string {
	if utf8.Valid(s) {
		return strconv.Quote(string(s))
	}
	return "0x" + hex.EncodeToString(s)
}

// -----------------------------------------------------------------------------
// List
// -----------------------------------------------------------------------------

// List is an ordered bencode list.
type List []Value

// NewList returns a List holding vs in order.
func NewList(vs ...Value) Value { return List(vs) }

func (List) Kind() types.Kind { return types.KindList }
func (List) Exists() bool { return true }
func (List) IsInteger() bool { return false }
func (List) IsByteString() bool { return false }
func (List) IsList() bool { return true }
func (List) IsDictionary() bool { return false }
func (List) Int() int64 { return 0 }
func (List) Text() (string, bool) { return "", false }
func (List) Bytes() ([]byte, bool) { return nil, false }
func (l List) List() []Value { return l }
func (List) Field(string) Value { return Absent }
func (List) FieldNames() []string { return nil }
func (l List) Len() int { return len(l) }

func (l List) Index(i int) Value {
	if i < 0 || i >= len(l) {
		return Absent
	}
	return l[i]
}

func (l List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range l {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
