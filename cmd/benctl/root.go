package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/joshuapare/bencodekit/internal/logger"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool
	logFile string
	logDir  string
	limits  string
)

// errDifferences makes the process exit with status 1 without printing an
// error, the way diff(1) and cmp(1) report that inputs differ.
var errDifferences = errors.New("inputs differ")

var rootCmd = &cobra.Command{
	Use:   "benctl",
	Short: "Inspect, convert and verify bencode and torrent files",
	Long: `benctl is a tool for working with bencode documents such as BitTorrent
metainfo files. It lists and filters the files of a torrent, compares them with
a directory on disk, prints and converts documents to JSON, YAML or CBOR, and
checks that a document is in canonical form.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configureColor()
		return logger.Init(logger.Options{
			Verbose: verbose && !quiet,
			LogFile: logFile,
			LogDir:  logDir,
		})
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append JSON logs to this file")
	rootCmd.PersistentFlags().
		StringVar(&logDir, "log-dir", "", "Write JSON logs to a dated file in this directory")
	rootCmd.PersistentFlags().
		StringVar(&limits, "limits", "default", "Decoder resource limits (default, relaxed, strict, none)")
}

func execute() {
	err := rootCmd.Execute()
	_ = logger.Close()
	if err == nil {
		return
	}
	if !errors.Is(err, errDifferences) {
		printError("%v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
	}
	os.Exit(1)
}

// configureColor disables color for --no-color, NO_COLOR, and when stdout
// is not a terminal.
func configureColor() {
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	color.NoColor = noColor || os.Getenv("NO_COLOR") != "" || !tty
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a progress message to stderr if verbose mode is
// enabled, keeping stdout clean for document output.
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}
