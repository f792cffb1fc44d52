// Package xlog provides a thin component-scoped wrapper over log/slog,
// mirroring the reference corpus's "one Logger per component" pattern
// but using structured logging instead of hand-rolled level plumbing.
package xlog

import (
	"log/slog"
	"os"
)

var base = slog.New(slog.NewTextHandler(os.Stdout, nil))

// Logger is a slog.Logger scoped to a named component, so every line
// it emits carries a "component" attribute without the caller having
// to repeat it.
type Logger struct {
	*slog.Logger
}

// New returns a Logger for the given component name, e.g. xlog.New("registry").
func New(component string) *Logger {
	return &Logger{base.With("component", component)}
}
