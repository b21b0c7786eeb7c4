package vecarr

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vecarr-specific context. It provides
// structured logging with consistent field names across every vector
// operation that can fail or that mutates capacity.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler. If handler is
// nil, a text handler writing to stderr at Info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs at the
// given minimum level.
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
}

// NewTextLogger creates a Logger that outputs human-readable text logs at
// the given minimum level.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.Level(1000)}))}
}

// WithID returns a Logger that tags every subsequent record with the
// given vector identity, useful when a process holds many vectors.
func (l *Logger) WithID(id uint64) *Logger {
	return &Logger{Logger: l.Logger.With("vector_id", id)}
}

// LogGrow logs a capacity-growth event.
func (l *Logger) LogGrow(side string, oldCap, newCap int) {
	l.Debug("vector grew", "side", side, "old_cap", oldCap, "new_cap", newCap)
}

// LogShrink logs a capacity-shrink event.
func (l *Logger) LogShrink(side string, oldCap, newCap int) {
	l.Debug("vector shrank", "side", side, "old_cap", oldCap, "new_cap", newCap)
}

// LogInsert logs an insert-at-index operation.
func (l *Logger) LogInsert(index, size int, err error) {
	if err != nil {
		l.Warn("insert failed", "index", index, "size", size, "error", err)
		return
	}
	l.Debug("insert completed", "index", index, "size", size)
}

// LogRemove logs a remove-at-index operation.
func (l *Logger) LogRemove(index, size int, err error) {
	if err != nil {
		l.Warn("remove failed", "index", index, "size", size, "error", err)
		return
	}
	l.Debug("remove completed", "index", index, "size", size)
}

// LogSort logs a sort operation.
func (l *Logger) LogSort(size int) {
	l.Debug("sort completed", "size", size)
}

// LogMerge logs a merge-and-consume operation.
func (l *Logger) LogMerge(leftSize, rightSize int) {
	l.Debug("merge completed", "left_size", leftSize, "right_size", rightSize)
}
