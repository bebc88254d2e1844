// Package logger provides structured logging for the embedmap CLI.
// Progress messages are written to stderr at info level; debug messages
// appear when verbose mode is enabled via the --verbose flag.
package logger

import (
	"io"
	"os"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

var (
	mu      sync.RWMutex
	verbose bool
	level   = charmlog.InfoLevel
	json    bool
	output  io.Writer = os.Stderr
	base              = build()
)

// build creates the backing logger from the current settings (caller must hold lock).
func build() *charmlog.Logger {
	lvl := level
	if verbose {
		lvl = charmlog.DebugLevel
	}
	l := charmlog.NewWithOptions(output, charmlog.Options{
		ReportTimestamp: !json,
		TimeFormat:      "15:04:05",
		Level:           lvl,
	})
	if json {
		l.SetFormatter(charmlog.JSONFormatter)
	} else {
		l.SetFormatter(charmlog.TextFormatter)
	}
	return l
}

// SetVerbose enables or disables debug logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	base = build()
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetLevel sets the minimum level from "debug", "info", "warn" or "error".
// Unknown strings select info. Verbose mode still forces debug.
func SetLevel(s string) {
	lvl, err := charmlog.ParseLevel(s)
	if err != nil {
		lvl = charmlog.InfoLevel
	}
	mu.Lock()
	defer mu.Unlock()
	level = lvl
	base = build()
}

// SetJSON switches between JSON and human-readable text output.
func SetJSON(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	json = enabled
	base = build()
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	base = build()
}

// Reset restores the default configuration.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	verbose = false
	level = charmlog.InfoLevel
	json = false
	output = os.Stderr
	base = build()
}

func current() *charmlog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Debug logs a message when verbose mode is enabled.
func Debug(msg string, keyvals ...any) {
	current().Debug(msg, keyvals...)
}

// Section logs a section header in verbose mode.
func Section(name string) {
	current().Debug("=== " + name + " ===")
}

// Info logs a progress message.
func Info(msg string, keyvals ...any) {
	current().Info(msg, keyvals...)
}

// Warn logs a warning.
func Warn(msg string, keyvals ...any) {
	current().Warn(msg, keyvals...)
}

// Error logs an error.
func Error(msg string, keyvals ...any) {
	current().Error(msg, keyvals...)
}
