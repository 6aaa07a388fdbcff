package torrent

import (
	"crypto/sha1"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joshuapare/bencodekit/pkg/ast"
	"github.com/joshuapare/bencodekit/pkg/bencode"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// PieceHashLen is the size of one SHA-1 piece hash in info.pieces.
const PieceHashLen = sha1.Size

// ErrNotTorrent is returned when a document lacks an info dictionary.
var ErrNotTorrent = errors.New("not a torrent metainfo document")

// Metainfo is a read-only view over a decoded metainfo document. Missing
// optional fields read as zero values.
type Metainfo struct {
	root    ast.Value
	info    ast.Value
	rawInfo []byte            // source bytes of info, when decoded from a Document
	decoder *encoding.Decoder // for non-UTF-8 names, from the encoding field
}

// File is one file listed in a torrent. Path holds the path segments
// relative to the torrent's root directory.
type File struct {
	Path   []string
	Length int64
}

// Join returns the path segments joined with sep.
func (f File) Join(sep string) string { return strings.Join(f.Path, sep) }

// Name returns the last path segment.
func (f File) Name() string {
	if len(f.Path) == 0 {
		return ""
	}
	return f.Path[len(f.Path)-1]
}

// Open decodes the metainfo file at path with default resource limits.
func Open(path string) (*Metainfo, error) {
	doc, err := bencode.DecodeDocumentFile(path, bencode.DefaultOptions(), "info")
	if err != nil {
		err = errors.Wrapf(err, "load torrent %s", path)
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.WithHint(err, "check the path of the .torrent file")
		}
		return nil, err
	}
	m, err := FromDocument(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "load torrent %s", path)
	}
	return m, nil
}

// FromDocument wraps a decoded document that kept the raw bytes of its
// "info" field, so InfoHash matches the bytes on disk.
func FromDocument(doc *bencode.Document) (*Metainfo, error) {
	m, err := FromValue(doc.Root)
	if err != nil {
		return nil, err
	}
	m.rawInfo, _ = doc.Raw("info")
	return m, nil
}

// FromValue wraps an already decoded document. Without the source bytes,
// InfoHash falls back to the canonical encoding of info.
func FromValue(root ast.Value) (*Metainfo, error) {
	info := root.Field("info")
	if !info.IsDictionary() {
		return nil, errors.WithHint(errors.WithStack(ErrNotTorrent),
			"a metainfo file is a dictionary with an \"info\" dictionary")
	}
	m := &Metainfo{root: root, info: info}
	if name, ok := root.Field("encoding").Text(); ok {
		if enc, err := htmlindex.Get(name); err == nil {
			m.decoder = enc.NewDecoder()
		}
	}
	return m, nil
}

// Root returns the whole document.
func (m *Metainfo) Root() ast.Value { return m.root }

// Info returns the info dictionary.
func (m *Metainfo) Info() ast.Value { return m.info }

// Encoding returns the declared character encoding, if any.
func (m *Metainfo) Encoding() string {
	s, _ := m.root.Field("encoding").Text()
	return s
}

// Name returns the suggested name of the file or root directory.
func (m *Metainfo) Name() string {
	if v := m.info.Field("name.utf-8"); v.Exists() {
		return m.text(v)
	}
	return m.text(m.info.Field("name"))
}

// Announce returns the primary tracker URL.
func (m *Metainfo) Announce() string {
	s, _ := m.root.Field("announce").Text()
	return s
}

// AnnounceList returns the tracker tiers of announce-list.
func (m *Metainfo) AnnounceList() [][]string {
	var tiers [][]string
	for _, tier := range m.root.Field("announce-list").List() {
		var urls []string
		for _, u := range tier.List() {
			if s, ok := u.Text(); ok {
				urls = append(urls, s)
			}
		}
		if len(urls) > 0 {
			tiers = append(tiers, urls)
		}
	}
	return tiers
}

// Comment returns the free-form comment.
func (m *Metainfo) Comment() string { return m.text(m.root.Field("comment")) }

// CreatedBy returns the name of the program that made the torrent.
func (m *Metainfo) CreatedBy() string { return m.text(m.root.Field("created by")) }

// CreationDate returns the creation time, or the zero time when unset.
func (m *Metainfo) CreationDate() time.Time {
	v := m.root.Field("creation date")
	if !v.IsInteger() {
		return time.Time{}
	}
	return time.Unix(v.Int(), 0).UTC()
}

// PieceLength returns the number of bytes per piece.
func (m *Metainfo) PieceLength() int64 { return m.info.Field("piece length").Int() }

// PieceCount returns the number of piece hashes.
func (m *Metainfo) PieceCount() int { return m.info.Field("pieces").Len() / PieceHashLen }

// Private reports whether the torrent disables DHT and peer exchange.
func (m *Metainfo) Private() bool { return m.info.Field("private").Int() == 1 }

// IsMultiFile reports whether the torrent describes a directory.
func (m *Metainfo) IsMultiFile() bool { return m.info.Field("files").IsList() }

// Files returns the files of the torrent in document order. For a
// single-file torrent that is one file named after info.name.
func (m *Metainfo) Files() []File {
	if !m.IsMultiFile() {
		return []File{{Path: []string{m.Name()}, Length: m.info.Field("length").Int()}}
	}
	entries := m.info.Field("files").List()
	files := make([]File, 0, len(entries))
	for _, entry := range entries {
		segs := entry.Field("path.utf-8")
		if !segs.IsList() {
			segs = entry.Field("path")
		}
		if segs.Len() == 0 {
			continue
		}
		path := make([]string, 0, segs.Len())
		for _, seg := range segs.List() {
			path = append(path, m.text(seg))
		}
		files = append(files, File{Path: path, Length: entry.Field("length").Int()})
	}
	return files
}

// FilePaths returns the file paths joined with the OS path separator.
func (m *Metainfo) FilePaths() []string {
	files := m.Files()
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Join(string(filepath.Separator))
	}
	return paths
}

// TotalLength returns the sum of all file lengths.
func (m *Metainfo) TotalLength() int64 {
	var total int64
	for _, f := range m.Files() {
		total += f.Length
	}
	return total
}

// InfoHash returns the SHA-1 of the info dictionary as it appears in the
// source. A Metainfo built by FromValue has no source bytes and hashes the
// canonical encoding instead.
func (m *Metainfo) InfoHash() ([20]byte, error) {
	if m.rawInfo != nil {
		return sha1.Sum(m.rawInfo), nil
	}
	data, err := bencode.Marshal(m.info)
	if err != nil {
		return [20]byte{}, errors.Wrap(err, "encode info dictionary")
	}
	return sha1.Sum(data), nil
}

// InfoHashHex returns InfoHash as lowercase hex.
func (m *Metainfo) InfoHashHex() (string, error) {
	h, err := m.InfoHash()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(h[:]), nil
}

// text returns a string value as text: UTF-8 as is, otherwise decoded with
// the torrent's declared encoding, otherwise the raw bytes.
func (m *Metainfo) text(v ast.Value) string {
	if s, ok := v.Text(); ok {
		return s
	}
	raw, ok := v.Bytes()
	if !ok {
		return ""
	}
	if m.decoder != nil {
		if decoded, err := m.decoder.Bytes(raw); err == nil {
			return string(decoded)
		}
	}
	return string(raw)
}
