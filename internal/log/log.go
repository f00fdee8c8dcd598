// ABOUTME: Scoped, level-filtered logging over slog levels for session components
// ABOUTME: Each component gets its own *Logger via New(scope); output goes to stderr, never the driven TTY

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var level atomic.Int64

var (
	outMu sync.Mutex
	out   io.Writer = os.Stderr
)

func init() {
	level.Store(int64(LevelInfo))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// SetOutput redirects all loggers. Passing nil restores stderr.
func SetOutput(w io.Writer) {
	outMu.Lock()
	defer outMu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	out = w
}

// Logger writes messages tagged with a component scope.
// The zero value logs without a scope.
type Logger struct {
	scope string
	w     io.Writer // nil means the package output
}

// New returns a Logger tagged with scope (e.g. "Terminal-Hook").
func New(scope string) *Logger {
	return &Logger{scope: scope}
}

// NewWithWriter returns a Logger that writes to w instead of the package output.
func NewWithWriter(scope string, w io.Writer) *Logger {
	return &Logger{scope: scope, w: w}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{w: io.Discard}
}

// Scope returns the logger's scope tag.
func (l *Logger) Scope() string {
	if l == nil {
		return ""
	}
	return l.scope
}

// With returns a child logger whose scope is "<parent>/<sub>".
func (l *Logger) With(sub string) *Logger {
	if l == nil || l.scope == "" {
		return &Logger{scope: sub, w: l.writer()}
	}
	return &Logger{scope: l.scope + "/" + sub, w: l.w}
}

// Debug logs a debug message if the level allows it.
func (l *Logger) Debug(format string, args ...any) {
	l.emit(LevelDebug, "DEBUG", format, args...)
}

// Info logs an info message if the level allows it.
func (l *Logger) Info(format string, args ...any) {
	l.emit(LevelInfo, "INFO", format, args...)
}

// Warn logs a warning message if the level allows it.
func (l *Logger) Warn(format string, args ...any) {
	l.emit(LevelWarn, "WARN", format, args...)
}

// Error logs an error message (always emitted).
func (l *Logger) Error(format string, args ...any) {
	l.emit(LevelError, "ERROR", format, args...)
}

func (l *Logger) writer() io.Writer {
	if l == nil {
		return nil
	}
	return l.w
}

func (l *Logger) emit(lvl slog.Level, tag, format string, args ...any) {
	if lvl < LevelError && slog.Level(level.Load()) > lvl {
		return
	}

	msg := fmt.Sprintf(format, args...)
	scope := l.Scope()
	line := "[" + tag + "] " + msg + "\n"
	if scope != "" {
		line = "[" + tag + "] [" + scope + "] " + msg + "\n"
	}

	if w := l.writer(); w != nil {
		_, _ = io.WriteString(w, line)
		return
	}

	outMu.Lock()
	defer outMu.Unlock()
	_, _ = io.WriteString(out, line)
}

var root = &Logger{}

// Debug logs through the unscoped root logger.
func Debug(format string, args ...any) { root.Debug(format, args...) }

// Info logs through the unscoped root logger.
func Info(format string, args ...any) { root.Info(format, args...) }

// Warn logs through the unscoped root logger.
func Warn(format string, args ...any) { root.Warn(format, args...) }

// Error logs through the unscoped root logger.
func Error(format string, args ...any) { root.Error(format, args...) }
