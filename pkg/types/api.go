package types

import (
	"errors"
	"fmt"
	"strconv"
)

// -----------------------------------------------------------------------------
// Value kinds
// -----------------------------------------------------------------------------

// Kind tags the variant of a bencode value.
type Kind uint8

const (
	KindAbsent     Kind = iota // no such field or element
	KindInteger                // i<decimal>e
	KindByteString             // <len>:<bytes>
	KindList                   // l...e
	KindDictionary             // d...e
)

// String implements the Stringer interface for Kind.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindInteger:
		return "integer"
	case KindByteString:
		return "string"
	case KindList:
		return "list"
	case KindDictionary:
		return "dictionary"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat ErrKind = iota + 1 // input is not a valid bencode document
	ErrKindIO                        // the byte source failed to read
	ErrKindEncode                    // the byte sink failed or a value cannot be encoded
	ErrKindLimit                     // a configured resource limit was exceeded
)

// String implements the Stringer interface for ErrKind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindIO:
		return "io"
	case ErrKindEncode:
		return "encode"
	case ErrKindLimit:
		return "limit"
	default:
		return "unknown"
	}
}

// NoOffset marks errors that are not tied to a position in the input.
const NoOffset int64 = -1

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind    ErrKind
	Msg     string
	Literal string // offending literal text, when there is one
	Offset  int64  // byte offset of the failure in the input, or NoOffset
	Err     error  // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := "bencode: " + e.Msg
	if e.Literal != "" {
		msg += fmt.Sprintf(" %q", e.Literal)
	}
	if e.Offset >= 0 {
		msg += " at offset " + strconv.FormatInt(e.Offset, 10)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets the kind sentinels below match any error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil {
		return false
	}
	return t.Msg == "" && t.Kind == e.Kind
}

// Sentinels for errors.Is; each matches every error of its kind.
var (
	// ErrFormat matches FormatErrors: the input is not valid bencode.
	ErrFormat = &Error{Kind: ErrKindFormat, Offset: NoOffset}
	// ErrIO matches failures of the underlying byte source.
	ErrIO = &Error{Kind: ErrKindIO, Offset: NoOffset}
	// ErrEncode matches failures while encoding.
	ErrEncode = &Error{Kind: ErrKindEncode, Offset: NoOffset}
	// ErrLimit matches decodes stopped by a configured limit.
	ErrLimit = &Error{Kind: ErrKindLimit, Offset: NoOffset}
)

// FormatError builds an ErrKindFormat error at offset.
func FormatError(offset int64, msg string, literal string, cause error) *Error {
	return &Error{Kind: ErrKindFormat, Msg: msg, Literal: literal, Offset: offset, Err: cause}
}

// IOError wraps a read failure of the byte source.
func IOError(offset int64, cause error) *Error {
	return &Error{Kind: ErrKindIO, Msg: "read failed", Offset: offset, Err: cause}
}

// LimitError reports a decode stopped by a configured resource limit. cause
// is normally an *ast.ValidationError naming the limit.
func LimitError(offset int64, cause error) *Error {
	return &Error{Kind: ErrKindLimit, Msg: "resource limit reached", Offset: offset, Err: cause}
}

// EncodeError wraps a failure while encoding.
func EncodeError(msg string, cause error) *Error {
	return &Error{Kind: ErrKindEncode, Msg: msg, Offset: NoOffset, Err: cause}
}

// KindOf returns the ErrKind of err, or zero when err is not an *Error.
func KindOf(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
