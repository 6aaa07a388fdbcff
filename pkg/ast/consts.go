package ast

const (
	// ============================================================================
	// Decode Limits
	// ============================================================================
	// Bencode itself imposes no bounds. These presets keep a decode of
	// untrusted input from exhausting the stack or memory. Real-world torrent
	// files stay well inside DefaultLimits: their nesting is shallow and the
	// largest string is the concatenated piece hashes.

	// DefaultMaxDepth bounds list/dictionary nesting for DefaultLimits.
	DefaultMaxDepth = 512

	// RelaxedMaxDepth allows unusually deep documents.
	RelaxedMaxDepth = 4096

	// StrictMaxDepth suits documents with a known shallow schema.
	StrictMaxDepth = 64

	// DefaultMaxStringLen bounds a single byte string (256 MiB).
	DefaultMaxStringLen = 256 << 20

	// RelaxedMaxStringLen bounds a single byte string (1 GiB).
	RelaxedMaxStringLen = 1 << 30

	// StrictMaxStringLen bounds a single byte string (16 MiB).
	StrictMaxStringLen = 16 << 20

	// DefaultMaxElements bounds the entries of one list or dictionary.
	DefaultMaxElements = 1 << 20

	// RelaxedMaxElements bounds the entries of one list or dictionary.
	RelaxedMaxElements = 1 << 24

	// StrictMaxElements bounds the entries of one list or dictionary.
	StrictMaxElements = 1 << 16

	// DefaultMaxTotalSize bounds the encoded size of a document (1 GiB).
	DefaultMaxTotalSize = 1 << 30

	// RelaxedMaxTotalSize bounds the encoded size of a document (4 GiB).
	RelaxedMaxTotalSize = 4 << 30

	// StrictMaxTotalSize bounds the encoded size of a document (64 MiB).
	StrictMaxTotalSize = 64 << 20
)

const (
	// PathSeparator separates dictionary keys in a path.
	PathSeparator = '.'

	// PathIndexOpen and PathIndexClose delimit a list index in a path.
	PathIndexOpen  = '['
	PathIndexClose = ']'

	// PathEscape makes the next path byte literal.
	PathEscape = '\\'

	// PathEmptyKey stands for the empty dictionary key in a path.
	PathEmptyKey = `""`
)
