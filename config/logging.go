package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/natefinch/lumberjack"
)

// ParseLevel maps debug, info, warn or error (any case) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: unknown log level %q", s)
	}

	return l, nil
}

// NewLogger builds the structured logger described by c. The terminal
// belongs to the UI, so records go to a rotating file, or nowhere when no
// file is configured. The returned closer releases the file.
func NewLogger(c Config) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if c.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}

	w := &lumberjack.Logger{
		Filename: c.LogFile,
		MaxSize:  c.LogMaxSize, // megabytes
		MaxAge:   c.LogMaxAge,  // days
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})

	return slog.New(h).With("app", "pathgrid"), w, nil
}
