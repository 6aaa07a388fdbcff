package torrent

import (
	"crypto/sha1"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joshuapare/bencodekit/pkg/ast"
	"github.com/joshuapare/bencodekit/pkg/bencode"
	"github.com/joshuapare/bencodekit/pkg/types"
	"github.com/stretchr/testify/require"
)

func fileEntry(length int64, path ...string) ast.Value {
	segs := make([]ast.Value, len(path))
	for i, p := range path {
		segs[i] = ast.Text(p)
	}
	return ast.NewDictionary(
		ast.Entry{Key: "length", Value: ast.Int(length)},
		ast.Entry{Key: "path", Value: ast.NewList(segs...)},
	)
}

func multiFile(t *testing.T) *Metainfo {
	t.Helper()
	root := ast.NewDictionary(
		ast.Entry{Key: "announce", Value: ast.Text("http://tracker.example/announce")},
		ast.Entry{Key: "announce-list", Value: ast.NewList(
			ast.NewList(ast.Text("http://a"), ast.Text("http://b")),
			ast.NewList(),
			ast.NewList(ast.Text("udp://c")),
		)},
		ast.Entry{Key: "comment", Value: ast.Text("test album")},
		ast.Entry{Key: "created by", Value: ast.Text("benctl")},
		ast.Entry{Key: "creation date", Value: ast.Int(1700000000)},
		ast.Entry{Key: "info", Value: ast.NewDictionary(
			ast.Entry{Key: "name", Value: ast.Text("album")},
			ast.Entry{Key: "piece length", Value: ast.Int(16384)},
			ast.Entry{Key: "pieces", Value: ast.Bytes(make([]byte, 3*PieceHashLen))},
			ast.Entry{Key: "private", Value: ast.Int(1)},
			ast.Entry{Key: "files", Value: ast.NewList(
				fileEntry(100, "cd1", "01.flac"),
				fileEntry(200, "cd1", "02.flac"),
				fileEntry(5, "cover.jpg"),
				ast.NewDictionary(ast.Entry{Key: "length", Value: ast.Int(1)}), // no path
			)},
		)},
	)
	m, err := FromValue(root)
	require.NoError(t, err)
	return m
}

func TestMetainfo_Fields(t *testing.T) {
	m := multiFile(t)
	require.Equal(t, "album", m.Name())
	require.Equal(t, "http://tracker.example/announce", m.Announce())
	require.Equal(t, [][]string{{"http://a", "http://b"}, {"udp://c"}}, m.AnnounceList())
	require.Equal(t, "test album", m.Comment())
	require.Equal(t, "benctl", m.CreatedBy())
	require.Equal(t, time.Unix(1700000000, 0).UTC(), m.CreationDate())
	require.Equal(t, int64(16384), m.PieceLength())
	require.Equal(t, 3, m.PieceCount())
	require.True(t, m.Private())
	require.True(t, m.IsMultiFile())
	require.Equal(t, int64(305), m.TotalLength())
}

func TestMetainfo_Files(t *testing.T) {
	m := multiFile(t)
	files := m.Files()
	require.Len(t, files, 3, "entries without a path are skipped")
	require.Equal(t, File{Path: []string{"cd1", "02.flac"}, Length: 200}, files[1])
	require.Equal(t, "02.flac", files[1].Name())

	sep := string(filepath.Separator)
	require.Equal(t, []string{"cd1" + sep + "01.flac", "cd1" + sep + "02.flac", "cover.jpg"}, m.FilePaths())
}

func TestMetainfo_SingleFile(t *testing.T) {
	m, err := FromValue(ast.NewDictionary(ast.Entry{Key: "info", Value: ast.NewDictionary(
		ast.Entry{Key: "name", Value: ast.Text("disk.iso")},
		ast.Entry{Key: "length", Value: ast.Int(4096)},
	)}))
	require.NoError(t, err)
	require.False(t, m.IsMultiFile())
	require.Equal(t, []File{{Path: []string{"disk.iso"}, Length: 4096}}, m.Files())
	require.Empty(t, m.AnnounceList())
	require.True(t, m.CreationDate().IsZero())
	require.False(t, m.Private())
}

func TestMetainfo_PathEncodings(t *testing.T) {
	cyrillic := []byte{0xc0, 0xe1, 0xe2} // "Абв" in windows-1251
	info := func(extra ...ast.Entry) ast.Value {
		entry := append([]ast.Entry{
			{Key: "length", Value: ast.Int(1)},
			{Key: "path", Value: ast.NewList(ast.Bytes(cyrillic))},
		}, extra...)
		return ast.NewDictionary(ast.Entry{Key: "files", Value: ast.NewList(ast.NewDictionary(entry...))})
	}

	// Declared encoding decodes legacy bytes.
	m, err := FromValue(ast.NewDictionary(
		ast.Entry{Key: "encoding", Value: ast.Text("windows-1251")},
		ast.Entry{Key: "info", Value: info()},
	))
	require.NoError(t, err)
	require.Equal(t, "windows-1251", m.Encoding())
	require.Equal(t, "Абв", m.Files()[0].Name())

	// path.utf-8 wins over path.
	m, err = FromValue(ast.NewDictionary(ast.Entry{Key: "info", Value: info(
		ast.Entry{Key: "path.utf-8", Value: ast.NewList(ast.Text("utf8-name"))},
	)}))
	require.NoError(t, err)
	require.Equal(t, "utf8-name", m.Files()[0].Name())

	// Without a usable encoding the raw bytes are kept.
	m, err = FromValue(ast.NewDictionary(
		ast.Entry{Key: "encoding", Value: ast.Text("no-such-charset")},
		ast.Entry{Key: "info", Value: info()},
	))
	require.NoError(t, err)
	require.Equal(t, string(cyrillic), m.Files()[0].Name())
}

func TestMetainfo_InfoHash(t *testing.T) {
	info := ast.NewDictionary(
		ast.Entry{Key: "name", Value: ast.Text("a")},
		ast.Entry{Key: "length", Value: ast.Int(1)},
	)
	m, err := FromValue(ast.NewDictionary(ast.Entry{Key: "info", Value: info}))
	require.NoError(t, err)

	got, err := m.InfoHash()
	require.NoError(t, err)
	require.Equal(t, sha1.Sum([]byte("d6:lengthi1e4:name1:ae")), got)

	hexHash, err := m.InfoHashHex()
	require.NoError(t, err)
	require.Len(t, hexHash, 40)
}

func TestMetainfo_InfoHashUsesSourceBytes(t *testing.T) {
	// Unsorted keys and a leading zero: the canonical form differs.
	rawInfo := "d4:name1:a6:lengthi01ee"
	data := []byte("d8:announce3:url4:info" + rawInfo + "e")

	doc, err := bencode.DecodeDocument(data, bencode.DefaultOptions(), "info")
	require.NoError(t, err)
	m, err := FromDocument(doc)
	require.NoError(t, err)

	got, err := m.InfoHash()
	require.NoError(t, err)
	require.Equal(t, sha1.Sum([]byte(rawInfo)), got)
	require.NotEqual(t, sha1.Sum([]byte("d6:lengthi1e4:name1:ae")), got)

	path := filepath.Join(t.TempDir(), "lenient.torrent")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	opened, err := Open(path)
	require.NoError(t, err)
	fromFile, err := opened.InfoHash()
	require.NoError(t, err)
	require.Equal(t, got, fromFile)

	_, err = FromDocument(&bencode.Document{Root: ast.Int(1)})
	require.ErrorIs(t, err, ErrNotTorrent)
}

func TestFromValue_NotTorrent(t *testing.T) {
	for _, v := range []ast.Value{ast.Int(1), ast.NewDictionary(), ast.NewDictionary(ast.Entry{Key: "info", Value: ast.Text("x")})} {
		_, err := FromValue(v)
		require.ErrorIs(t, err, ErrNotTorrent)
		require.NotEmpty(t, errors.GetAllHints(err))
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "album.torrent")
	require.NoError(t, bencode.WriteFile(path, multiFile(t).Root()))

	m, err := Open(path)
	require.NoError(t, err)
	require.Len(t, m.Files(), 3)

	_, err = Open(filepath.Join(dir, "missing.torrent"))
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Contains(t, errors.FlattenHints(err), "check the path")

	bad := filepath.Join(dir, "bad.torrent")
	require.NoError(t, os.WriteFile(bad, []byte("d4:info"), 0o644))
	_, err = Open(bad)
	require.ErrorIs(t, err, types.ErrFormat)
	require.Contains(t, err.Error(), "load torrent")
}
