package printer

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/joshuapare/bencodekit/pkg/ast"
)

// FromJSON builds a Value tree from JSON in the shape written by the JSON
// format. Integers stay integers, strings become byte strings, booleans
// become 1 and 0, {"$binary": "<hex>"} becomes a binary string and
// "$binary:<hex>" keys become binary keys. Null fields are dropped from
// objects. Null list elements and non-integral numbers are errors.
func FromJSON(data []byte) (ast.Value, error) {
	value, typ, end, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	if rest := bytes.TrimSpace(data[end:]); len(rest) > 0 {
		return nil, fmt.Errorf("parse JSON: %d bytes after the top-level value", len(rest))
	}
	v, err := fromJSON(value, typ, "")
	if err != nil {
		return nil, err
	}
	if !v.Exists() {
		return nil, fmt.Errorf("parse JSON: top-level value is null")
	}
	return v, nil
}

// fromJSON converts one value. A null yields Absent, for the caller to
// accept or reject.
func fromJSON(value []byte, typ jsonparser.ValueType, path string) (ast.Value, error) {
	switch typ {
	case jsonparser.Number:
		n, err := jsonparser.ParseInt(value)
		if err != nil {
			return nil, fmt.Errorf("at %s: %s is not an integer", pathLabel(path), value)
		}
		return ast.Int(n), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return nil, fmt.Errorf("at %s: %w", pathLabel(path), err)
		}
		return ast.Text(s), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return nil, fmt.Errorf("at %s: %w", pathLabel(path), err)
		}
		if b {
			return ast.Int(1), nil
		}
		return ast.Int(0), nil
	case jsonparser.Null:
		return ast.Absent, nil
	case jsonparser.Array:
		return arrayFromJSON(value, path)
	case jsonparser.Object:
		return objectFromJSON(value, path)
	default:
		return nil, fmt.Errorf("at %s: unsupported JSON value", pathLabel(path))
	}
}

func arrayFromJSON(value []byte, path string) (ast.Value, error) {
	items := ast.List{}
	var firstErr error
	_, err := jsonparser.ArrayEach(value, func(elem []byte, typ jsonparser.ValueType, _ int, _ error) {
		if firstErr != nil {
			return
		}
		elemPath := fmt.Sprintf("%s[%d]", path, len(items))
		v, err := fromJSON(elem, typ, elemPath)
		if err != nil {
			firstErr = err
			return
		}
		if !v.Exists() {
			firstErr = fmt.Errorf("at %s: null list element", elemPath)
			return
		}
		items = append(items, v)
	})
	if firstErr != nil {
		return nil, firstErr
	}
	if err != nil {
		return nil, fmt.Errorf("at %s: %w", pathLabel(path), err)
	}
	return items, nil
}

func objectFromJSON(value []byte, path string) (ast.Value, error) {
	b := ast.NewDictionaryBuilder()
	var binary []byte
	isBinary := false
	err := jsonparser.ObjectEach(value, func(k, elem []byte, typ jsonparser.ValueType, _ int) error {
		native := string(k)
		key, err := DictionaryKey(native)
		if err != nil {
			return fmt.Errorf("at %s: bad binary key %q", pathLabel(path), native)
		}
		if native == BinaryKey && typ == jsonparser.String {
			binary, err = hex.DecodeString(string(elem))
			isBinary = err == nil
		}
		v, err := fromJSON(elem, typ, ast.JoinKey(path, key))
		if err != nil {
			return err
		}
		b.Set(key, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if isBinary && b.Len() == 1 {
		return ast.Bytes(binary), nil
	}
	return b.Build(), nil
}

func pathLabel(path string) string {
	if path == "" {
		return "top level"
	}
	return path
}
