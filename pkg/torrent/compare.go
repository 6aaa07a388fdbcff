package torrent

import (
	"slices"
	"strings"
)

// Comparison partitions the paths of a torrent and a directory. Each slice
// is sorted.
type Comparison struct {
	Equal       []string // listed in the torrent and present on disk
	TorrentOnly []string // listed in the torrent, missing on disk
	DirOnly     []string // present on disk, not listed in the torrent
}

// Compare merge-joins the two path lists after sorting copies of them.
// Paths compare byte-wise. A path listed twice on one side matches at most
// once.
func Compare(torrentFiles, dirFiles []string) Comparison {
	tor := slices.Sorted(slices.Values(torrentFiles))
	dir := slices.Sorted(slices.Values(dirFiles))

	var c Comparison
	i, j := 0, 0
	for i < len(tor) && j < len(dir) {
		switch cmp := strings.Compare(tor[i], dir[j]); {
		case cmp == 0:
			c.Equal = append(c.Equal, tor[i])
			i++
			j++
		case cmp < 0:
			c.TorrentOnly = append(c.TorrentOnly, tor[i])
			i++
		default:
			c.DirOnly = append(c.DirOnly, dir[j])
			j++
		}
	}
	// Whatever is left on either side has no partner.
	c.TorrentOnly = append(c.TorrentOnly, tor[i:]...)
	c.DirOnly = append(c.DirOnly, dir[j:]...)
	return c
}

// Identical reports whether both sides list exactly the same paths.
func (c Comparison) Identical() bool {
	return len(c.TorrentOnly) == 0 && len(c.DirOnly) == 0
}
