package adblockgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with engine-specific helpers so both
// persistence operations log with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. If handler is nil, a
// text handler to stderr at info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogSerialize logs a serialize operation.
func (l *Logger) LogSerialize(size int, err error) {
	if err != nil {
		l.Error("serialize failed",
			"error", err,
		)
	} else {
		l.Debug("serialize completed",
			"bytes", size,
		)
	}
}

// LogDeserialize logs a deserialize operation.
func (l *Logger) LogDeserialize(size int, err error) {
	if err != nil {
		l.Error("deserialize failed",
			"bytes", size,
			"error", err,
		)
	} else {
		l.Debug("deserialize completed",
			"bytes", size,
		)
	}
}
