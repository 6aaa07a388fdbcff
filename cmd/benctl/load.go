package main

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/joshuapare/bencodekit/internal/logger"
	"github.com/joshuapare/bencodekit/pkg/ast"
	"github.com/joshuapare/bencodekit/pkg/bencode"
	"github.com/joshuapare/bencodekit/pkg/torrent"
)

const torrentExt = ".torrent"

// decodeOptions returns the decoder options selected by --limits.
func decodeOptions(strict bool) (bencode.Options, error) {
	opts := bencode.DefaultOptions()
	opts.Strict = strict
	switch strings.ToLower(limits) {
	case "", "default":
		opts.Limits = ast.DefaultLimits()
	case "relaxed":
		opts.Limits = ast.RelaxedLimits()
	case "strict":
		opts.Limits = ast.StrictLimits()
	case "none":
		opts.Limits = ast.Limits{}
	default:
		return opts, errors.WithHint(errors.Newf("unknown limits preset %q", limits),
			"use one of: default, relaxed, strict, none")
	}
	return opts, nil
}

// loadDocument decodes the bencode file at path.
func loadDocument(path string) (ast.Value, error) {
	opts, err := decodeOptions(false)
	if err != nil {
		return nil, err
	}
	printVerbose("Decoding: %s\n", path)
	logger.Debug("decode file", "path", path, "limits", limits)
	root, err := bencode.DecodeFileWithOptions(path, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return root, nil
}

// loadTorrent decodes the metainfo file at path. A name without the
// .torrent extension is accepted with a warning.
func loadTorrent(path string) (*torrent.Metainfo, error) {
	if !strings.EqualFold(filepath.Ext(path), torrentExt) {
		logger.Warn("torrent file without .torrent extension", "path", path)
		printVerbose("Warning: %s does not end with %s\n", path, torrentExt)
	}
	opts, err := decodeOptions(false)
	if err != nil {
		return nil, err
	}
	printVerbose("Decoding: %s\n", path)
	logger.Debug("decode torrent", "path", path, "limits", limits)
	doc, err := bencode.DecodeDocumentFile(path, opts, "info")
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	m, err := torrent.FromDocument(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "load torrent %s", path)
	}
	return m, nil
}
