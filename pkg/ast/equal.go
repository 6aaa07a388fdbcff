package ast

import "bytes"

// Equal reports whether a and b are structurally equal: same kinds, same
// integers, identical bytes, lists equal element by element in order, and
// dictionaries with the same keys mapping to equal values. Absent equals
// only Absent.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch {
	case a.IsInteger():
		return a.Int() == b.Int()
	case a.IsByteString():
		ab, _ := a.Bytes()
		bb, _ := b.Bytes()
		return bytes.Equal(ab, bb)
	case a.IsList():
		al, bl := a.List(), b.List()
		if len(al) != len(bl) {
			return false
		}
		for i := range al {
			if !Equal(al[i], bl[i]) {
				return false
			}
		}
		return true
	case a.IsDictionary():
		ae, be := a.(*Dictionary).entries, b.(*Dictionary).entries
		if len(ae) != len(be) {
			return false
		}
		for i := range ae {
			if ae[i].Key != be[i].Key || !Equal(ae[i].Value, be[i].Value) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
