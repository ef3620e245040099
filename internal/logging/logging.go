// Package logging builds the slog loggers handed to the walker.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

// Format names accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns a logger writing to w at the given level.
// An empty format picks text when w is a terminal and JSON otherwise.
// If w is nil, os.Stderr is used.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	if format == "" {
		format = detectFormat(w)
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler

	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Component returns logger tagged with a "component" attribute for module-scoped logging.
func Component(logger *slog.Logger, component string) *slog.Logger {
	return logger.With(slog.String("component", component))
}

func detectFormat(w io.Writer) string {
	f, ok := w.(interface{ Fd() uintptr })
	if ok && isatty.IsTerminal(f.Fd()) {
		return FormatText
	}

	return FormatJSON
}
