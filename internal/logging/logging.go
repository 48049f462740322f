// Package logging builds the slog.Logger shared by the resolver, the server
// and the CLI from the log.level and log.format settings.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrInvalidSetting is returned for an unknown level or format.
var ErrInvalidSetting = errors.New("invalid log setting")

// Settings selects the handler and minimum level.
type Settings struct {
	Level  string // debug, info, warn, error (empty = info)
	Format string // text, json (empty = text)
}

// New returns a logger writing to w.
func New(w io.Writer, s Settings) (*slog.Logger, error) {
	level, err := ParseLevel(s.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(s.Format) {
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w: format %q (must be text or json)", ErrInvalidSetting, s.Format)
	}
	return slog.New(handler), nil
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: level %q (must be debug, info, warn, or error)", ErrInvalidSetting, name)
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
