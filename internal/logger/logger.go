// Package logger holds the process-wide slog logger of the benctl CLI. The
// codec packages never log; only command code does.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger instance. It discards all output until Init
// enables a destination.
var L = discard()

// closer releases the current log file, if any.
var closer io.Closer

const (
	logPrefix     = "benctl-"
	logSuffix     = ".log"
	retentionDays = 14
)

// Options configures the logger initialization.
type Options struct {
	// Verbose sends debug-level text logs to Stderr.
	Verbose bool

	// Stderr receives verbose logs. Default: os.Stderr.
	Stderr io.Writer

	// LogFile appends JSON logs to this path. It takes precedence over
	// LogDir.
	LogFile string

	// LogDir writes JSON logs to a dated file in this directory, removing
	// files older than two weeks.
	LogDir string

	// Level is the minimum level of file logs. Default: LevelInfo, or
	// LevelDebug with Verbose.
	Level slog.Level
}

// Init configures logging. Call it once before any log calls; calling it
// again closes the previous log file.
func Init(opts Options) error {
	_ = Close()

	level := opts.Level
	if level == 0 && opts.Verbose {
		level = slog.LevelDebug
	}

	path := opts.LogFile
	if path == "" && opts.LogDir != "" {
		if err := os.MkdirAll(opts.LogDir, 0o755); err != nil {
			return err
		}
		cleanOldLogs(opts.LogDir, time.Now())
		path = filepath.Join(opts.LogDir, logPrefix+time.Now().Format(time.DateOnly)+logSuffix)
	}

	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		closer = f
		L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	case opts.Verbose:
		w := opts.Stderr
		if w == nil {
			w = os.Stderr
		}
		L = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	default:
		L = discard()
	}
	return nil
}

// Close flushes and closes the log file opened by Init, and resets L to
// discard.
func Close() error {
	L = discard()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// cleanOldLogs removes dated log files older than retentionDays.
func cleanOldLogs(logDir string, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}
		// benctl-2024-01-05.log
		dateStr := strings.TrimPrefix(strings.TrimSuffix(name, logSuffix), logPrefix)
		logDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			continue
		}
		if logDate.Before(cutoff) {
			_ = os.Remove(filepath.Join(logDir, name))
		}
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
