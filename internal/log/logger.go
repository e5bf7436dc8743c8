// Package log builds the slog loggers used across buy.
package log

import (
	"io"
	"log/slog"
)

// Common attribute keys.
const (
	FieldComponent = "component"
	FieldCategory  = "category"
	FieldAmount    = "amount"
	FieldLedger    = "ledger"
	FieldError     = "error"
	FieldAddr      = "addr"
	FieldCommit    = "commit"
)

// Component names.
const (
	ComponentCLI      = "cli"
	ComponentRecorder = "recorder"
	ComponentWeb      = "web"
	ComponentGit      = "git"
)

// New returns a text logger writing to w. debug lowers the level to Debug.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WithComponent tags l with a component name.
func WithComponent(l *slog.Logger, component string) *slog.Logger {
	if l == nil {
		l = Discard()
	}
	return l.With(FieldComponent, component)
}
