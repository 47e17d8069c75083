package crystio

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger channel names, carried in the "logger" attribute of every record.
const (
	// LoggerName tags the per-file and per-read records, which are only
	// emitted when the read is verbose.
	LoggerName = "crystio.io.stills"
	// WarningsLoggerName tags warnings, which are emitted regardless of
	// verbosity.
	WarningsLoggerName = "crystio.warnings"
)

// Logger wraps slog.Logger with reader-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger

	warnings *slog.Logger
}

// NewLogger creates a new Logger with the given handler. Reader records are
// tagged logger=crystio.io.stills, warnings logger=crystio.warnings.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	base := slog.New(handler)
	return &Logger{
		Logger:   base.With("logger", LoggerName),
		warnings: base.With("logger", WarningsLoggerName),
	}
}

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	discard := slog.New(slog.DiscardHandler)
	return &Logger{Logger: discard, warnings: discard}
}

// WithBackend adds the dispatch backend name to the logger.
func (l *Logger) WithBackend(name string) *Logger {
	return &Logger{
		Logger:   l.Logger.With("backend", name),
		warnings: l.warn().With("backend", name),
	}
}

// warn returns the warnings channel; a Logger built as a struct literal
// warns through its embedded logger.
func (l *Logger) warn() *slog.Logger {
	if l.warnings == nil {
		return l.Logger
	}
	return l.warnings
}

// LogFile logs a decoded file. memoryInUse is the controller's reserved
// budget at the time the file finished.
func (l *Logger) LogFile(ctx context.Context, path string, rows, identifiers int, memoryInUse int64, elapsed time.Duration) {
	l.InfoContext(ctx, "read reflection file",
		"path", path,
		"rows", rows,
		"identifiers", identifiers,
		"memory_in_use", memoryInUse,
		"elapsed", elapsed,
	)
}

// LogRead logs the outcome of a whole read.
func (l *Logger) LogRead(ctx context.Context, files, rows int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "read stills failed",
			"files", files,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "read stills completed",
			"files", files,
			"rows", rows,
			"elapsed", elapsed,
		)
	}
}

// LogFallback warns that a requested backend could not be used.
func (l *Logger) LogFallback(ctx context.Context, requested string, reason error) {
	l.warn().WarnContext(ctx, "parallel backend unavailable, reading serially",
		"requested", requested,
		"reason", reason,
	)
}
