package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of a path: a dictionary key or a list index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// String renders the segment in path syntax.
func (s Segment) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return escapeKey(s.Key)
}

// Lookup navigates v along path and returns the value found there, or Absent
// when any step is missing or the path is malformed. The empty path returns v.
//
// Keys are separated by '.', list indexes are written "[n]", '\' makes
// the following byte literal, and "" names the empty key:
//
//	info.files[0].path
//	announce-list[0][0]
//	info.piece length
//	weird\.key
//	info."".x
func Lookup(v Value, path string) Value {
	segs, err := SplitPath(path)
	if err != nil {
		return Absent
	}
	return LookupSegments(v, segs)
}

// LookupSegments navigates v along already parsed segments.
func LookupSegments(v Value, segs []Segment) Value {
	for _, s := range segs {
		if s.IsIndex {
			v = v.Index(s.Index)
		} else {
			v = v.Field(s.Key)
		}
		if !v.Exists() {
			return Absent
		}
	}
	return v
}

// SplitPath parses a path into segments.
func SplitPath(path string) ([]Segment, error) {
	var (
		segs []Segment
		key  strings.Builder
		// inKey is set once a key has started; the key may still be empty.
		inKey bool
		// afterSep is set right after a '.', where a key must follow.
		afterSep bool
		// afterIndex is set right after a ']', where only '.' or '[' may follow.
		afterIndex bool
	)
	startKey := func(i int) error {
		if afterIndex {
			return fmt.Errorf("path %q: missing separator before key at byte %d", path, i)
		}
		inKey, afterSep = true, false
		return nil
	}
	flush := func() {
		if inKey {
			segs = append(segs, Segment{Key: key.String()})
			key.Reset()
			inKey = false
		}
	}
	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case c == PathEscape:
			if i+1 >= len(path) {
				return nil, fmt.Errorf("path %q: trailing escape", path)
			}
			if err := startKey(i); err != nil {
				return nil, err
			}
			i++
			key.WriteByte(path[i])
		case c == PathSeparator:
			if !inKey && !afterIndex {
				return nil, fmt.Errorf("path %q: empty key at byte %d", path, i)
			}
			flush()
			afterSep, afterIndex = true, false
		case c == PathIndexOpen:
			if afterSep {
				return nil, fmt.Errorf("path %q: empty key at byte %d", path, i)
			}
			flush()
			end := strings.IndexByte(path[i:], PathIndexClose)
			if end < 0 {
				return nil, fmt.Errorf("path %q: unterminated index at byte %d", path, i)
			}
			n, err := strconv.Atoi(path[i+1 : i+end])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("path %q: bad index %q", path, path[i+1:i+end])
			}
			segs = append(segs, Segment{Index: n, IsIndex: true})
			i += end
			afterIndex = true
		case !inKey && strings.HasPrefix(path[i:], PathEmptyKey) && keyEnds(path, i+len(PathEmptyKey)):
			if err := startKey(i); err != nil {
				return nil, err
			}
			i += len(PathEmptyKey) - 1
		default:
			if err := startKey(i); err != nil {
				return nil, err
			}
			key.WriteByte(c)
		}
	}
	if afterSep {
		return nil, fmt.Errorf("path %q: trailing separator", path)
	}
	flush()
	return segs, nil
}

// keyEnds reports whether a key ending just before path[i] is complete.
func keyEnds(path string, i int) bool {
	return i == len(path) || path[i] == PathSeparator || path[i] == PathIndexOpen
}

// FormatPath renders segments in the syntax accepted by SplitPath.
func FormatPath(segs []Segment) string {
	var sb strings.Builder
	for i, s := range segs {
		if !s.IsIndex && i > 0 {
			sb.WriteByte(PathSeparator)
		}
		sb.WriteString(s.String())
	}
	return sb.String()
}

// JoinKey appends a dictionary key to a path.
func JoinKey(path, key string) string {
	if path == "" {
		return escapeKey(key)
	}
	return path + string(PathSeparator) + escapeKey(key)
}

func escapeKey(key string) string {
	if key == "" {
		return PathEmptyKey
	}
	quoted := strings.HasPrefix(key, PathEmptyKey)
	if !quoted && !strings.ContainsAny(key, ".[\\") {
		return key
	}
	var sb strings.Builder
	if quoted {
		sb.WriteByte(PathEscape)
	}
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case PathSeparator, PathIndexOpen, PathEscape:
			sb.WriteByte(PathEscape)
		}
		sb.WriteByte(key[i])
	}
	return sb.String()
}
