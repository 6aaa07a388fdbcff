package printer

import (
	"unicode/utf8"

	"github.com/fxamacker/cbor/v2"
	"github.com/joshuapare/bencodekit/pkg/ast"
)

// cborMode is the Core Deterministic Encoding of RFC 8949 section 4.2, so
// equal trees always produce identical CBOR.
var cborMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// MarshalCBOR returns the deterministic CBOR encoding of v. Integers map to
// CBOR integers, text to text strings, binary to byte strings.
func MarshalCBOR(v ast.Value) ([]byte, error) {
	return cborMode.Marshal(toCBOR(v))
}

func (p *Printer) printCBOR(v ast.Value) error {
	data, err := MarshalCBOR(v)
	if err != nil {
		return err
	}
	_, err = p.writer.Write(data)
	return err
}

func toCBOR(v ast.Value) any {
	switch {
	case v.IsInteger():
		return v.Int()
	case v.IsByteString():
		if s, ok := v.Text(); ok {
			return s
		}
		b, _ := v.Bytes()
		return b
	case v.IsList():
		items := v.List()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = toCBOR(item)
		}
		return out
	default:
		out := make(map[any]any, v.Len())
		for k, val := range v.(*ast.Dictionary).All() {
			var key any = k
			if !utf8.ValidString(k) {
				key = cbor.ByteString(k)
			}
			out[key] = toCBOR(val)
		}
		return out
	}
}
