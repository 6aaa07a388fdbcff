package ast

import (
	"math"
	"testing"

	"github.com/joshuapare/bencodekit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() Value {
	return NewDictionary(
		Entry{Key: "announce", Value: Text("http://tracker.example/announce")},
		Entry{Key: "info", Value: NewDictionary(
			Entry{Key: "name", Value: Text("album")},
			Entry{Key: "piece length", Value: Int(262144)},
			Entry{Key: "files", Value: NewList(
				NewDictionary(
					Entry{Key: "length", Value: Int(10)},
					Entry{Key: "path", Value: NewList(Text("cd1"), Text("01.flac"))},
				),
				NewDictionary(
					Entry{Key: "length", Value: Int(20)},
					Entry{Key: "path", Value: NewList(Text("cover.jpg"))},
				),
			)},
		)},
	)
}

func TestNavigation_ChainedLookups(t *testing.T) {
	root := sampleTree()

	files := root.Field("info").Field("files")
	require.True(t, files.IsList())
	require.Equal(t, 2, files.Len())

	name, ok := files.Index(0).Field("path").Index(1).Text()
	require.True(t, ok)
	require.Equal(t, "01.flac", name)

	require.Equal(t, int64(262144), root.Field("info").Field("piece length").Int())
}

func TestNavigation_MissingPathsDegradeToAbsent(t *testing.T) {
	root := sampleTree()

	missing := root.Field("info").Field("nope").Field("deeper").Index(3).Field("x")
	require.False(t, missing.Exists())
	require.Equal(t, Absent, missing)

	// Field on a list, Index on a dictionary, both on scalars.
	require.Equal(t, Absent, root.Field("info").Field("files").Field("length"))
	require.Equal(t, Absent, root.Index(0))
	require.Equal(t, Absent, root.Field("announce").Field("x"))
	require.Equal(t, Absent, root.Field("info").Field("piece length").Index(0))

	// Out of range indexes in both directions.
	files := root.Field("info").Field("files")
	require.Equal(t, Absent, files.Index(2))
	require.Equal(t, Absent, files.Index(-1))
}

func TestNavigation_AbsentDefaults(t *testing.T) {
	a := Absent
	assert.False(t, a.Exists())
	assert.False(t, a.IsInteger())
	assert.False(t, a.IsByteString())
	assert.False(t, a.IsList())
	assert.False(t, a.IsDictionary())
	assert.Equal(t, types.KindAbsent, a.Kind())
	assert.Equal(t, int64(0), a.Int())

	s, ok := a.Text()
	assert.False(t, ok)
	assert.Empty(t, s)

	b, ok := a.Bytes()
	assert.False(t, ok)
	assert.Nil(t, b)

	assert.Empty(t, a.List())
	assert.Empty(t, a.FieldNames())
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, "<absent>", a.String())
}

func TestNavigation_KindMismatchDefaults(t *testing.T) {
	values := []Value{Int(7), Text("x"), NewList(Int(1)), NewDictionary(Entry{Key: "k", Value: Int(1)})}
	for _, v := range values {
		t.Run(v.Kind().String(), func(t *testing.T) {
			require.True(t, v.Exists())
			if !v.IsInteger() {
				require.Equal(t, int64(0), v.Int())
			}
			if !v.IsByteString() {
				_, ok := v.Text()
				require.False(t, ok)
				_, ok = v.Bytes()
				require.False(t, ok)
			}
			if !v.IsList() {
				require.Empty(t, v.List())
			}
			if !v.IsDictionary() {
				require.Empty(t, v.FieldNames())
				require.Equal(t, Absent, v.Field("k"))
			}
		})
	}
}

func TestIntegerBounds(t *testing.T) {
	v := Int(math.MaxInt64)
	require.True(t, v.IsInteger())
	require.Equal(t, int64(math.MaxInt64), v.Int())
	require.Equal(t, "9223372036854775807", v.String())
	require.Equal(t, "-1", Int(-1).String())
}

func TestByteString_TextIsExplicitAboutUTF8(t *testing.T) {
	valid := Text("héllo")
	s, ok := valid.Text()
	require.True(t, ok)
	require.Equal(t, "héllo", s)

	binary := Bytes([]byte{0xff, 0xfe, 0x00})
	s, ok = binary.Text()
	require.False(t, ok, "invalid UTF-8 must not be reported as text")
	require.Empty(t, s)

	raw, ok := binary.Bytes()
	require.True(t, ok)
	require.Equal(t, []byte{0xff, 0xfe, 0x00}, raw)
	require.Equal(t, 3, binary.Len())
	require.Equal(t, "0xfffe00", binary.String())
	require.Equal(t, `"héllo"`, valid.String())
}

func TestByteString_EmptyIsPresent(t *testing.T) {
	empty := Bytes(nil)
	require.True(t, empty.Exists())
	b, ok := empty.Bytes()
	require.True(t, ok)
	require.NotNil(t, b)
	require.Empty(t, b)
	s, ok := empty.Text()
	require.True(t, ok)
	require.Equal(t, "", s)
}

func TestString_Rendering(t *testing.T) {
	v := NewDictionary(
		Entry{Key: "spam", Value: NewList(Text("a"), Int(1))},
		Entry{Key: "cow", Value: Text("moo")},
	)
	require.Equal(t, `{"cow": "moo", "spam": ["a", 1]}`, v.String())
}
