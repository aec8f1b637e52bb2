// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// card portfolio application.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain call-scoped
// loggers via FromContext.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

func configureGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

func newLogger(w io.Writer, role string) *Logger {
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewLogger constructs a *Logger for the given role label (e.g. "admin")
// writing JSON lines to os.Stderr.
//
// The logger is configured with:
//   - global log level set to Debug (all levels are emitted);
//   - a "role" field set to role, useful for filtering logs from different
//     application components;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation.
func NewLogger(role string) *Logger {
	configureGlobals()
	return newLogger(os.Stderr, role)
}

// NewClientLogger constructs the logger of the interactive client. The
// terminal is owned by the UI, so entries go to the file at path; a relative
// path is resolved next to the executable. When the file cannot be opened
// the logger discards its output.
//
// The returned function closes the log file.
func NewClientLogger(role, path string) (*Logger, func() error) {
	configureGlobals()

	if !filepath.IsAbs(path) {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), path)
	}

	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return newLogger(io.Discard, role), func() error { return nil }
	}

	return newLogger(logFile, role), logFile.Close
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithSession returns a child logger tagged with the session id of an
// authenticated user.
func (l *Logger) WithSession(sessionID, username string) *Logger {
	return &Logger{l.With().Str("session_id", sessionID).Str("username", username).Logger()}
}

// AtLevel returns a copy of l that drops entries below level, one of the
// zerolog level names ("debug", "info", "warn", "error").
func (l *Logger) AtLevel(level string) (*Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return &Logger{l.Level(lvl)}, nil
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns a disabled logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// FromContextOr returns the logger attached to ctx, or fallback when ctx
// carries none. A nil fallback behaves like FromContext.
func FromContextOr(ctx context.Context, fallback *Logger) *Logger {
	l := log.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled && fallback != nil {
		return fallback
	}
	return &Logger{*l}
}
