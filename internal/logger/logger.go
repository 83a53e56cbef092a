// Package logger provides verbose logging for github-browser.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr so users can follow the window search.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// write holds the write lock so concurrent runs never interleave a line.
func write(prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	write("[DEBUG] ", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	write("[INFO] ", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	write("[WARN] ", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	write("\n=== ", "%s ===", name)
}

// Run is a logger bound to one listing run. Every line carries the run ID
// so interleaved output from the MCP server stays attributable.
type Run struct {
	id string
}

// ForRun returns a logger for a new run with a fresh short ID.
func ForRun() *Run {
	return &Run{id: uuid.NewString()[:8]}
}

// ID returns the run ID.
func (r *Run) ID() string {
	return r.id
}

// Debug prints a run-scoped debug message if verbose mode is enabled.
func (r *Run) Debug(format string, args ...any) {
	write("[DEBUG] [run "+r.id+"] ", format, args...)
}

// Info prints a run-scoped informational message if verbose mode is enabled.
func (r *Run) Info(format string, args ...any) {
	write("[INFO] [run "+r.id+"] ", format, args...)
}

// Warn prints a run-scoped warning if verbose mode is enabled.
func (r *Run) Warn(format string, args ...any) {
	write("[WARN] [run "+r.id+"] ", format, args...)
}
