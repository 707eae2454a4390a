// Package logging builds the structured logger shared by every executable.
// Tools launched from Explorer run without a console, so an optional log
// file receives the same records as stderr.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// ErrInvalidLevel is returned for level names charmbracelet/log does not know.
var ErrInvalidLevel = errors.New("invalid log level")

// Options configures New.
type Options struct {
	Prefix  string    // executable name shown before each record
	Level   string    // "debug", "info", "warn", "error"; empty = info
	File    string    // appended to when set
	Verbose bool      // forces debug
	Quiet   bool      // forces error; Verbose wins when both are set
	Stderr  io.Writer // defaults to os.Stderr
}

// New returns a logger and a close function for the log file. The close
// function is never nil.
func New(opts Options) (*log.Logger, func() error, error) {
	level, err := resolveLevel(opts)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = os.Stderr
	if opts.Stderr != nil {
		w = opts.Stderr
	}

	closeFn := func() error { return nil }
	if opts.File != "" {
		f, err := openLogFile(opts.File)
		if err != nil {
			return nil, nil, err
		}
		w = io.MultiWriter(w, f)
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          opts.Prefix,
		Level:           level,
		ReportTimestamp: opts.File != "",
		TimeFormat:      time.DateTime,
	})
	return logger, closeFn, nil
}

// Discard returns a logger that drops every record.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

func resolveLevel(opts Options) (log.Level, error) {
	switch {
	case opts.Verbose:
		return log.DebugLevel, nil
	case opts.Quiet:
		return log.ErrorLevel, nil
	case opts.Level == "":
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, opts.Level)
	}
	return level, nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600) // #nosec G304 -- log path comes from config
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}
