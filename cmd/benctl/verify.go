package main

import (
	"bytes"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/joshuapare/bencodekit/internal/logger"
	"github.com/joshuapare/bencodekit/pkg/bencode"
	"github.com/joshuapare/bencodekit/pkg/torrent"
	"github.com/joshuapare/bencodekit/pkg/types"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newVerifyCmd())
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Check that a file is canonical bencode",
		Long: `The verify command decodes a file in strict mode, which rejects leading
zeros, negative zero, unsorted or duplicate dictionary keys and trailing
bytes, and then checks that re-encoding the tree reproduces the file byte
for byte. For a torrent the info hash is also shown.

Example:
  benctl verify album.torrent
  benctl verify album.torrent --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args)
		},
	}
	return cmd
}

type verifyJSON struct {
	File      string `json:"file"`
	Valid     bool   `json:"valid"`
	Canonical bool   `json:"canonical"`
	Error     string `json:"error,omitempty"`
	Offset    *int64 `json:"offset,omitempty"`
	InfoHash  string `json:"info_hash,omitempty"`
}

func runVerify(args []string) error {
	path := args[0]
	result := verifyJSON{File: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	opts, err := decodeOptions(true)
	if err != nil {
		return err
	}

	verr := verifyDocument(data, opts, &result)
	logger.Info("verify", "file", path, "valid", result.Valid, "canonical", result.Canonical)

	if jsonOut {
		if err := printJSON(result); err != nil {
			return err
		}
		if verr != nil {
			return errDifferences
		}
		return nil
	}

	if verr != nil {
		return errors.Wrapf(verr, "verify %s", path)
	}
	printInfo("%s: valid canonical bencode (%d bytes)\n", path, len(data))
	if result.InfoHash != "" {
		printInfo("  Info hash: %s\n", result.InfoHash)
	}
	return nil
}

// verifyDocument fills result and returns the first problem found.
func verifyDocument(data []byte, opts bencode.Options, result *verifyJSON) error {
	root, err := bencode.DecodeBytesWithOptions(data, opts)
	if err != nil {
		result.Error = err.Error()
		var te *types.Error
		if errors.As(err, &te) && te.Offset != types.NoOffset {
			result.Offset = &te.Offset
		}
		return err
	}
	result.Valid = true

	encoded, err := bencode.Marshal(root)
	if err != nil {
		result.Error = err.Error()
		return err
	}
	if !bytes.Equal(encoded, data) {
		err := errors.Newf("re-encoding differs from the input (%d bytes, input %d bytes)", len(encoded), len(data))
		result.Error = err.Error()
		return err
	}
	result.Canonical = true

	if m, err := torrent.FromValue(root); err == nil {
		if hash, err := m.InfoHashHex(); err == nil {
			result.InfoHash = hash
		}
	}
	return nil
}
