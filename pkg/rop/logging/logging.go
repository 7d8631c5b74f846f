// Package logging defines the Logger capability accepted by the lazy chain's
// instrumentation steps, along with slog adapters.
package logging

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// Logger receives rendered messages.
type Logger interface {
	Log(ctx context.Context, msg string)
}

// LoggerFunc adapts a function to Logger.
type LoggerFunc func(ctx context.Context, msg string)

func (f LoggerFunc) Log(ctx context.Context, msg string) {
	f(ctx, msg)
}

// Slog writes messages to an slog.Logger at a fixed level.
type Slog struct {
	Logger *slog.Logger
	Level  slog.Level
}

func (s Slog) Log(ctx context.Context, msg string) {
	l := s.Logger
	if l == nil {
		l = slog.Default()
	}
	l.Log(ctx, s.Level, msg)
}

// Default returns the process-wide sink, slog.Default at Info level.
func Default() Logger {
	return Slog{Level: slog.LevelInfo}
}

// NewConsole returns a colourised slog.Logger writing to w.
func NewConsole(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
	}))
}

// ParseLevel maps a level name to slog.Level, defaulting to Info.
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}
