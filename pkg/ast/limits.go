package ast

import (
	"errors"
	"fmt"
)

// Limits defines resource bounds for decoding and validating documents.
// A zero field means that dimension is unlimited.
type Limits struct {
	// MaxDepth is the maximum nesting of lists and dictionaries. The root
	// container is at depth 1.
	MaxDepth int

	// MaxStringLen is the maximum length of one byte string, in bytes.
	MaxStringLen int64

	// MaxElements is the maximum number of entries of one list or
	// dictionary.
	MaxElements int

	// MaxTotalSize is the maximum encoded size of the whole document.
	MaxTotalSize int64
}

// DefaultLimits returns bounds suitable for untrusted metainfo files.
func DefaultLimits() Limits {
	return Limits{
		MaxDepth:     DefaultMaxDepth,
		MaxStringLen: DefaultMaxStringLen,
		MaxElements:  DefaultMaxElements,
		MaxTotalSize: DefaultMaxTotalSize,
	}
}

// RelaxedLimits returns more permissive bounds for large trusted documents.
func RelaxedLimits() Limits {
	return Limits{
		MaxDepth:     RelaxedMaxDepth,
		MaxStringLen: RelaxedMaxStringLen,
		MaxElements:  RelaxedMaxElements,
		MaxTotalSize: RelaxedMaxTotalSize,
	}
}

// StrictLimits returns conservative bounds for resource-constrained callers.
func StrictLimits() Limits {
	return Limits{
		MaxDepth:     StrictMaxDepth,
		MaxStringLen: StrictMaxStringLen,
		MaxElements:  StrictMaxElements,
		MaxTotalSize: StrictMaxTotalSize,
	}
}

// IsZero reports whether no limit is set.
func (l Limits) IsZero() bool {
	return l == Limits{}
}

// ValidationError represents a limit validation failure.
type ValidationError struct {
	Limit   string // Name of the limit that was exceeded
	Current int64  // Current value
	Maximum int64  // Maximum allowed value
	Path    string // Path to the offending value (if known)
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("limit exceeded at '%s': %s is %d (max %d)",
			e.Path, e.Limit, e.Current, e.Maximum)
	}
	return fmt.Sprintf("limit exceeded: %s is %d (max %d)",
		e.Limit, e.Current, e.Maximum)
}

// CheckDepth returns a ValidationError when depth exceeds MaxDepth.
func (l Limits) CheckDepth(depth int) error {
	if l.MaxDepth > 0 && depth > l.MaxDepth {
		return &ValidationError{Limit: "MaxDepth", Current: int64(depth), Maximum: int64(l.MaxDepth)}
	}
	return nil
}

// CheckString returns a ValidationError when n exceeds MaxStringLen.
func (l Limits) CheckString(n int64) error {
	if l.MaxStringLen > 0 && n > l.MaxStringLen {
		return &ValidationError{Limit: "MaxStringLen", Current: n, Maximum: l.MaxStringLen}
	}
	return nil
}

// CheckElements returns a ValidationError when n exceeds MaxElements.
func (l Limits) CheckElements(n int) error {
	if l.MaxElements > 0 && n > l.MaxElements {
		return &ValidationError{Limit: "MaxElements", Current: int64(n), Maximum: int64(l.MaxElements)}
	}
	return nil
}

// CheckTotalSize returns a ValidationError when n exceeds MaxTotalSize.
func (l Limits) CheckTotalSize(n int64) error {
	if l.MaxTotalSize > 0 && n > l.MaxTotalSize {
		return &ValidationError{Limit: "MaxTotalSize", Current: n, Maximum: l.MaxTotalSize}
	}
	return nil
}

// ValidateTree checks a built tree against limits and returns the first
// violation, annotated with the path of the offending value.
func ValidateTree(v Value, limits Limits) error {
	if err := limits.CheckTotalSize(EncodedSize(v)); err != nil {
		return err
	}
	return Walk(v, func(path string, depth int, v Value) error {
		var err error
		switch {
		case v.IsByteString():
			err = limits.CheckString(int64(v.Len()))
		case v.IsList(), v.IsDictionary():
			if err = limits.CheckDepth(depth + 1); err == nil {
				err = limits.CheckElements(v.Len())
			}
		}
		ve := &ValidationError{}
		if errors.As(err, &ve) {
			ve.Path = path
			return ve
		}
		return err
	})
}
