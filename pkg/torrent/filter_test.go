package torrent

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	files := []File{
		{Path: []string{"cd1", "01.flac"}, Length: 30_000_000},
		{Path: []string{"cd1", "02.flac"}, Length: 5_000_000},
		{Path: []string{"cover.jpg"}, Length: 200_000},
	}
	tests := []struct {
		expr string
		want []string
	}{
		{"", []string{"cd1/01.flac", "cd1/02.flac", "cover.jpg"}},
		{`ext == ".flac"`, []string{"cd1/01.flac", "cd1/02.flac"}},
		{`ext == ".flac" && length > 10_000_000`, []string{"cd1/01.flac"}},
		{`depth == 1`, []string{"cover.jpg"}},
		{`path startsWith "cd1/" && name endsWith "2.flac"`, []string{"cd1/02.flac"}},
		{`length < 0`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			flt, err := NewFilter(tt.expr)
			require.NoError(t, err)
			require.Equal(t, tt.expr, flt.String())

			got, err := flt.Apply(files)
			require.NoError(t, err)
			var paths []string
			for _, f := range got {
				paths = append(paths, f.Join("/"))
			}
			require.Equal(t, tt.want, paths)
		})
	}
}

func TestNewFilter_Errors(t *testing.T) {
	for _, src := range []string{`length +`, `size > 1`, `length + 1`} {
		t.Run(src, func(t *testing.T) {
			_, err := NewFilter(src)
			require.Error(t, err)
			require.Contains(t, errors.FlattenHints(err), "available fields")
		})
	}
}
