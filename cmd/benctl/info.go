package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file.torrent>",
		Short: "Show the metadata of a torrent",
		Long: `The info command displays the name, trackers, piece layout, total size,
file count and info hash of a torrent.

Example:
  benctl info album.torrent
  benctl info album.torrent --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

type infoJSON struct {
	Name         string     `json:"name"`
	Announce     string     `json:"announce,omitempty"`
	AnnounceList [][]string `json:"announce_list,omitempty"`
	Comment      string     `json:"comment,omitempty"`
	CreatedBy    string     `json:"created_by,omitempty"`
	CreationDate *time.Time `json:"creation_date,omitempty"`
	Encoding     string     `json:"encoding,omitempty"`
	PieceLength  int64      `json:"piece_length"`
	Pieces       int        `json:"pieces"`
	TotalLength  int64      `json:"total_length"`
	Files        int        `json:"files"`
	MultiFile    bool       `json:"multi_file"`
	Private      bool       `json:"private"`
	InfoHash     string     `json:"info_hash"`
}

func runInfo(args []string) error {
	m, err := loadTorrent(args[0])
	if err != nil {
		return err
	}

	hash, err := m.InfoHashHex()
	if err != nil {
		return err
	}

	info := infoJSON{
		Name:         m.Name(),
		Announce:     m.Announce(),
		AnnounceList: m.AnnounceList(),
		Comment:      m.Comment(),
		CreatedBy:    m.CreatedBy(),
		Encoding:     m.Encoding(),
		PieceLength:  m.PieceLength(),
		Pieces:       m.PieceCount(),
		TotalLength:  m.TotalLength(),
		Files:        len(m.Files()),
		MultiFile:    m.IsMultiFile(),
		Private:      m.Private(),
		InfoHash:     hash,
	}
	if created := m.CreationDate(); !created.IsZero() {
		info.CreationDate = &created
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nTorrent Information:\n")
	printInfo("  Name: %s\n", info.Name)
	if info.Announce != "" {
		printInfo("  Announce: %s\n", info.Announce)
	}
	for i, tier := range info.AnnounceList {
		printInfo("  Tier %d: %v\n", i+1, tier)
	}
	if info.Comment != "" {
		printInfo("  Comment: %s\n", info.Comment)
	}
	if info.CreatedBy != "" {
		printInfo("  Created by: %s\n", info.CreatedBy)
	}
	if info.CreationDate != nil {
		printInfo("  Created: %s\n", info.CreationDate.Format(time.RFC3339))
	}
	if info.Encoding != "" {
		printInfo("  Encoding: %s\n", info.Encoding)
	}
	printInfo("  Piece length: %s\n", formatBytes(info.PieceLength))
	printInfo("  Pieces: %d\n", info.Pieces)
	printInfo("  Total size: %s (%d bytes)\n", formatBytes(info.TotalLength), info.TotalLength)
	printInfo("  Files: %d\n", info.Files)
	if info.Private {
		printInfo("  Private: yes\n")
	}
	printInfo("  Info hash: %s\n", info.InfoHash)
	return nil
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
