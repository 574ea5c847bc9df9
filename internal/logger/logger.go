// Package logger creates slog loggers for command line tooling.
package logger

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// New creates logger writing human friendly output to stderr. Colors are
// disabled when stderr is not a terminal.
func New(level slog.Level) *slog.Logger {
	if runtime.GOOS == "windows" {
		return slog.New(tint.NewHandler(colorable.NewColorableStderr(), &tint.Options{Level: level}))
	}
	w := os.Stderr
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:   level,
		NoColor: !isatty.IsTerminal(w.Fd()),
	}))
}
