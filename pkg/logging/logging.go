// Package logging configures the process wide structured logger.
//
// Records are fanned out to a human readable text handler (stderr by default) and,
// optionally, to a JSON lines file for later inspection.
package logging

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Manu343726/tricore/pkg/utils"
	slogmulti "github.com/samber/slog-multi"
)

// Logger configuration
type Options struct {
	// Minimum level of the records written to the console: debug, info, warn or error
	Level string
	// If not empty, all records (debug and above) are also written as JSON lines to this file
	File string
	// Console output. Defaults to stderr
	Console io.Writer
}

var ErrInvalidLevel = errors.New("invalid log level")

// Parses a level name (case insensitive). An empty name means info
func ParseLevel(name string) (slog.Level, error) {
	if strings.TrimSpace(name) == "" {
		return slog.LevelInfo, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, utils.MakeError(ErrInvalidLevel, "'%v' (expected debug, info, warn or error)", name)
	}

	return level, nil
}

// Creates a logger from the given options. The returned close function releases the log file, if any
func New(opts Options) (*slog.Logger, func() error, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(console, &slog.HandlerOptions{Level: level}),
	}

	closeFn := func() error { return nil }

	if opts.File != "" {
		file, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, utils.MakeError(err, "opening log file '%v'", opts.File)
		}

		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
		closeFn = file.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closeFn, nil
}

// Creates a logger and installs it as the slog default
func Setup(opts Options) (func() error, error) {
	logger, closeFn, err := New(opts)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(logger)
	return closeFn, nil
}
