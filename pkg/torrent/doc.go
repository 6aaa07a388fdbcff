// Package torrent reads BitTorrent metainfo files on top of the bencode
// codec: file lists, sizes, trackers and the info hash. It also scans
// directories and compares their contents with a torrent's file list, the
// job of benctl's files and diff commands.
package torrent
