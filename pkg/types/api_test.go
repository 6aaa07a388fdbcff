package types

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	require.Equal(t, "integer", KindInteger.String())
	require.Equal(t, "string", KindByteString.String())
	require.Equal(t, "list", KindList.String())
	require.Equal(t, "dictionary", KindDictionary.String())
	require.Equal(t, "absent", KindAbsent.String())
	require.Equal(t, "kind(42)", Kind(42).String())
}

func TestErrorMessage(t *testing.T) {
	err := FormatError(7, "bad integer", "1x", nil)
	require.Equal(t, `bencode: bad integer "1x" at offset 7`, err.Error())

	err = IOError(3, io.ErrClosedPipe)
	require.Equal(t, "bencode: read failed at offset 3: io: read/write on closed pipe", err.Error())

	err = EncodeError("write failed", nil)
	require.Equal(t, "bencode: write failed", err.Error())

	var nilErr *Error
	require.Equal(t, "<nil>", nilErr.Error())
}

func TestErrorsIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("loading: %w", FormatError(0, "unexpected end of input", "", nil))

	require.ErrorIs(t, err, ErrFormat)
	require.False(t, errors.Is(err, ErrIO))
	require.False(t, errors.Is(err, ErrEncode))
	require.Equal(t, ErrKindFormat, KindOf(err))

	ioErr := IOError(0, io.ErrUnexpectedEOF)
	require.ErrorIs(t, ioErr, ErrIO)
	require.ErrorIs(t, ioErr, io.ErrUnexpectedEOF)

	// A specific error does not match a different specific error of the same kind.
	require.False(t, errors.Is(FormatError(0, "a", "", nil), FormatError(0, "b", "", nil)))

	require.Equal(t, ErrKind(0), KindOf(io.EOF))
}
