// Package ast provides the in-memory representation of a bencode document and
// the navigation protocol used to query it.
//
// # Core Types
//
// Value is a closed sum type with five implementations:
//
//   - Integer: a signed 64-bit integer
//   - ByteString: an arbitrary byte sequence (not necessarily UTF-8)
//   - List: an ordered sequence of values
//   - *Dictionary: byte-string keys in ascending byte order, unique
//   - Absent: the sentinel returned by lookups that find nothing
//
// # Safe Navigation
//
// Every Value, Absent included, answers the whole query interface. Lookups
// that do not apply degrade to Absent or a zero default instead of failing,
// so chained queries never need intermediate checks:
//
//	files := root.Field("info").Field("files")
//	if !files.IsList() {
//		return nil // missing, or not a list
//	}
//	for _, f := range files.List() {
//		name, ok := f.Field("path").Index(0).Text()
//		...
//	}
//
// Text decoding is explicit: Text reports false for byte strings that are
// not valid UTF-8 rather than substituting replacement characters.
//
// # Paths
//
// Lookup navigates a compact path syntax ("info.files[0].path") and is total
// in the same way as Field and Index. SplitPath exposes the parsed segments.
//
// # Validation
//
// The Limits type bounds nesting depth, string length, container size and
// encoded size. The decoder enforces limits while reading; ValidateTree
// checks an already built tree. Three presets are available: DefaultLimits,
// RelaxedLimits and StrictLimits. The zero Limits imposes no bounds.
//
// # Immutability
//
// Trees produced by the decoder are not modified afterwards. Values returned
// by Bytes and List share storage with the tree and must not be modified.
package ast
