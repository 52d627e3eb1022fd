// Package logger writes diagnostic output for nodice to stderr.
// Debug, Section and Info are silent unless --debug is given; warnings
// are always written. Nothing here touches stdout, which carries only
// the passphrase.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	enabled bool
	output  io.Writer = os.Stderr
)

// SetDebug enables or disables debug output.
func SetDebug(v bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = v
}

// IsDebug returns true if debug output is enabled.
func IsDebug() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetOutput sets the writer for log output. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func logf(always bool, prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if enabled || always {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}

// Debug prints a message if debug output is enabled.
func Debug(format string, args ...any) {
	logf(false, "[DEBUG] ", format, args...)
}

// Section prints a section header if debug output is enabled.
func Section(name string) {
	logf(false, "\n=== ", "%s ===", name)
}

// Info prints an informational message if debug output is enabled.
func Info(format string, args ...any) {
	logf(false, "[INFO] ", format, args...)
}

// Warn prints a warning whether or not debug output is enabled.
func Warn(format string, args ...any) {
	logf(true, "[WARN] ", format, args...)
}
