package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// SlogLogger implements Logger on top of a structured slog.Logger.
// Messages are emitted at debug level so texture traces stay out of the
// way unless verbose output is requested.
type SlogLogger struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogLogger creates a Logger writing to l at debug level. A nil l uses slog.Default().
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{logger: l, level: slog.LevelDebug}
}

// WithLevel returns a copy of the logger emitting at the given level
func (sl *SlogLogger) WithLevel(level slog.Level) *SlogLogger {
	return &SlogLogger{logger: sl.logger, level: level}
}

func (sl *SlogLogger) Printf(format string, args ...interface{}) {
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	sl.logger.Log(context.Background(), sl.level, msg)
}
