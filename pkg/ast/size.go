package ast

import "strconv"

// EncodedSize returns the number of bytes the canonical encoding of v
// occupies. Absent contributes nothing.
func EncodedSize(v Value) int64 {
	switch {
	case v.IsInteger():
		return int64(len(strconv.FormatInt(v.Int(), 10))) + 2
	case v.IsByteString():
		return stringSize(v.Len())
	case v.IsList():
		size := int64(2)
		for _, e := range v.List() {
			size += EncodedSize(e)
		}
		return size
	case v.IsDictionary():
		size := int64(2)
		d := v.(*Dictionary)
		for _, e := range d.entries {
			size += stringSize(len(e.Key)) + EncodedSize(e.Value)
		}
		return size
	default:
		return 0
	}
}

func stringSize(n int) int64 {
	return int64(len(strconv.Itoa(n))) + 1 + int64(n)
}
