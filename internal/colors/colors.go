// Package colors provides colored console output for the CLI surface.
package colors

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// ANSI escape codes used by the output helpers.
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Reset  = "\033[0m"
)

const checkmark = "✓"

// Logger receives a mirror of every console message, so file logs keep the
// full CLI transcript.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	debugEnabled bool

	logger   Logger
	loggerMu sync.RWMutex

	// Guards the print-failure path so a failing Warning cannot recurse
	// through itself.
	failMu     sync.Mutex
	inFailPath bool
)

func init() {
	if val := os.Getenv("CLOSEWATCH_DEBUG"); val == "true" || val == "1" {
		debugEnabled = true
	}
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

// SetLogger sets the structured logger that mirrors console output.
func SetLogger(l Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

func mirrorLogger() Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// emit prints one decorated line. A write failure is reported through
// Warning exactly once; if the warning itself cannot be printed, a bare
// stderr write is the final fallback.
func emit(w *os.File, format string, args ...any) {
	_, err := fmt.Fprintf(w, format, args...)
	if err == nil {
		return
	}
	failMu.Lock()
	already := inFailPath
	inFailPath = true
	failMu.Unlock()
	if already {
		fmt.Fprintf(os.Stderr, "failed to print message: %v\n", err)
		return
	}
	defer func() {
		failMu.Lock()
		inFailPath = false
		failMu.Unlock()
	}()
	Warning("failed to print message: " + err.Error())
}

// Error outputs an error message to stderr.
func Error(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := mirrorLogger(); l != nil {
		l.Error(msg)
	}
	emit(os.Stderr, "%sError:%s %s%s\n", Red, Reset, msg, Reset)
}

// Success outputs a success message to stdout.
func Success(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := mirrorLogger(); l != nil {
		l.Info(msg, "type", "success")
	}
	emit(os.Stdout, "%s%s%s %s%s\n", Green, checkmark, Reset, msg, Reset)
}

// Warning outputs a warning message to stderr.
func Warning(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := mirrorLogger(); l != nil {
		l.Warn(msg)
	}
	emit(os.Stderr, "%sWarning:%s %s%s\n", Yellow, Reset, msg, Reset)
}

// Info outputs an informational message to stdout.
func Info(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := mirrorLogger(); l != nil {
		l.Info(msg)
	}
	emit(os.Stdout, "%s%s%s\n", Blue, msg, Reset)
}

// LogInfo outputs an informational message to stderr, keeping stdout clean
// for command output that scripts may capture.
func LogInfo(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := mirrorLogger(); l != nil {
		l.Info(msg)
	}
	emit(os.Stderr, "%s%s%s\n", Blue, msg, Reset)
}

// Debug outputs a debug message to stderr if debug is enabled.
func Debug(msgs ...string) {
	if !debugEnabled {
		return
	}
	msg := strings.Join(msgs, " ")
	if l := mirrorLogger(); l != nil {
		l.Debug(msg)
	}
	emit(os.Stderr, "%sDebug:%s %s%s\n", Cyan, Reset, msg, Reset)
}
