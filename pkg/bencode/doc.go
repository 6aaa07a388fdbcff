/*
Package bencode decodes and encodes the bencode format used by BitTorrent
metainfo files and tracker responses.

# Quick Start

Decode a torrent and read a field without nil checks:

	root, err := bencode.DecodeFile("album.torrent")
	if err != nil {
	    log.Fatal(err)
	}
	name, ok := root.Field("info").Field("name").Text()

Encode a dictionary; keys may be added in any order:

	out, err := bencode.EncodeDictionary(bencode.DictionaryFunc(func(f *bencode.Fields) error {
	    f.Text("name", "album")
	    f.Integer("piece length", 262144)
	    return nil
	}))
	// out == "d4:name5:album12:piece lengthi262144ee"

# Decoding

Decode, DecodeBytes and DecodeFile read exactly one value with no resource
bounds. DecodeWithOptions and NewDecoder take Options:

	v, err := bencode.DecodeWithOptions(r, bencode.DefaultOptions())

Options.Limits bounds nesting depth, string length, container size and
document size; use it for untrusted input, since an unbounded decode
recurses once per nesting level. Options.Strict rejects input that a
canonical encoder would never produce.

# Encoding

An Encoder writes scalars and containers to an io.Writer. Dictionaries are
described by a DictionaryProducer that registers fields on a Fields
collector; nothing is written until the producer returns, after which the
fields are emitted in ascending byte order of their keys. The same logical
dictionary therefore always encodes to the same bytes.

# Error Handling

Every error is a *types.Error. Use errors.Is against the kind sentinels:

	switch {
	case errors.Is(err, types.ErrFormat): // malformed input
	case errors.Is(err, types.ErrLimit):  // Options.Limits exceeded
	case errors.Is(err, types.ErrIO):     // the source failed
	case errors.Is(err, types.ErrEncode): // the sink failed, or Absent was encoded
	}
*/
package bencode
