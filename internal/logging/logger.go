package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/myrjola/detectivequest/internal/errors"
)

var ErrUnknownLevel = errors.NewSentinel("unknown log level")

// ParseLevel converts one of debug, info, warn or error to a [slog.Level].
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, errors.Wrap(ErrUnknownLevel, err.Error(), slog.String("level", level))
	}
	return l, nil
}

// New creates a text logger writing to w. The game protocol owns stdout so callers usually pass stderr.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(NewContextHandler(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}
