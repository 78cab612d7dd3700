// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging provides the leveled console logger used by quizconv.
// Every line carries the level and the first block of the run id.
package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Level represents a logging verbosity level.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

var levelNames = map[Level]string{
	LevelError: "ERROR",
	LevelWarn:  "WARN",
	LevelInfo:  "INFO",
	LevelDebug: "DEBUG",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel converts a level name (case-insensitive) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return LevelError, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "", "INFO":
		return LevelInfo, nil
	case "DEBUG":
		return LevelDebug, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q: use error, warn, info, or debug", s)
}

// Logger writes leveled lines to w.
type Logger struct {
	mu    sync.Mutex
	w     io.Writer
	level Level
	runID string
}

// New creates a logger writing to w at the given level with a fresh run id.
func New(w io.Writer, level Level) *Logger {
	return &Logger{w: w, level: level, runID: uuid.NewString()}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, LevelError)
}

// RunID returns the id stamped on every line from this logger.
func (l *Logger) RunID() string {
	return l.runID
}

// Enabled reports whether messages at lvl are written.
func (l *Logger) Enabled(lvl Level) bool {
	return lvl <= l.level
}

func (l *Logger) Error(format string, args ...any) { l.logf(LevelError, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Debug(format string, args ...any) { l.logf(LevelDebug, format, args...) }

func (l *Logger) logf(lvl Level, format string, args ...any) {
	if !l.Enabled(lvl) {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "[%s] %s %s\n", lvl, shortID(l.runID), msg)
}

// shortID returns the first block of a UUID.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
