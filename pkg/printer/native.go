package printer

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/joshuapare/bencodekit/pkg/ast"
)

const (
	// BinaryKey tags the one-entry JSON object standing in for a byte
	// string that is not valid UTF-8: {"$binary": "<hex>"}. A dictionary
	// key spelled "$binary" is written in the BinaryKeyPrefix form.
	BinaryKey = "$binary"

	// BinaryKeyPrefix marks a JSON object key holding the hex form of a
	// dictionary key that is not valid UTF-8.
	BinaryKeyPrefix = "$binary:"
)

// ToNative converts v into plain Go values for JSON-style encoders:
// int64, string, []any, map[string]any, with binary strings and keys
// wrapped as described by BinaryKey and BinaryKeyPrefix. Absent becomes nil.
func ToNative(v ast.Value) any {
	switch {
	case v == nil || !v.Exists():
		return nil
	case v.IsInteger():
		return v.Int()
	case v.IsByteString():
		if s, ok := v.Text(); ok {
			return s
		}
		b, _ := v.Bytes()
		return map[string]any{BinaryKey: hex.EncodeToString(b)}
	case v.IsList():
		items := v.List()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = ToNative(item)
		}
		return out
	default:
		out := make(map[string]any, v.Len())
		for key, val := range v.(*ast.Dictionary).All() {
			out[NativeKey(key)] = ToNative(val)
		}
		return out
	}
}

// NativeKey returns the JSON object key for a dictionary key. Keys that are
// not valid UTF-8 or that could be mistaken for the binary markers are hex
// encoded behind BinaryKeyPrefix.
func NativeKey(key string) string {
	if key != BinaryKey && utf8.ValidString(key) && !strings.HasPrefix(key, BinaryKeyPrefix) {
		return key
	}
	return BinaryKeyPrefix + hex.EncodeToString([]byte(key))
}

// DictionaryKey reverses NativeKey.
func DictionaryKey(native string) (string, error) {
	if !strings.HasPrefix(native, BinaryKeyPrefix) {
		return native, nil
	}
	b, err := hex.DecodeString(strings.TrimPrefix(native, BinaryKeyPrefix))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
