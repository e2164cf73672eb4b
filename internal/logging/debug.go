package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	out     io.Writer = os.Stderr
	verbose bool
)

// SetOutput redirects all log output. Tests use it to capture lines.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// Output returns the current log writer.
func Output() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return out
}

// SetVerbose turns debug output on regardless of TODO_DEBUG.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// DebugEnabled returns true if debug mode is enabled via TODO_DEBUG or SetVerbose
func DebugEnabled() bool {
	mu.Lock()
	v := verbose
	mu.Unlock()
	return v || os.Getenv("TODO_DEBUG") != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		write("DEBUG", fmt.Sprintf(format, args...))
	}
}

// Debugln prints a debug message only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		write("DEBUG", fmt.Sprintln(args...))
	}
}

// Infof always prints.
func Infof(format string, args ...interface{}) {
	write("INFO", fmt.Sprintf(format, args...))
}

// Errorf always prints. Used for failures that are re-raised to the caller
// after being recorded server-side.
func Errorf(format string, args ...interface{}) {
	write("ERROR", fmt.Sprintf(format, args...))
}

func write(level, msg string) {
	mu.Lock()
	defer mu.Unlock()
	msg = strings.TrimRight(msg, "\n")
	fmt.Fprintf(out, "%s %-5s %s\n", time.Now().Format(time.RFC3339), level, msg)
}
