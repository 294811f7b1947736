// Package logger provides leveled console logging for the blueprint CLI.
// The core solver packages stay pure; only the command layer logs.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

var levelNames = map[string]int{
	"trace": levelTrace,
	"debug": levelDebug,
	"info":  levelInfo,
	"warn":  levelWarn,
	"error": levelError,
}

// ConsoleLogger writes timestamped, level-filtered messages to a writer.
// All output is prefixed with [HH:MM:SS] timestamps. It is safe for
// concurrent use. Color output is enabled automatically when the writer is
// a terminal.
type ConsoleLogger struct {
	writer      io.Writer
	level       int
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger writing to w at the given level.
// Valid levels: trace, debug, info, warn, error (case-insensitive); empty or
// invalid levels default to "info". A nil writer discards all messages.
func NewConsoleLogger(w io.Writer, level string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      w,
		level:       normalizeLevel(level),
		colorOutput: isTerminal(w),
	}
}

// normalizeLevel maps a level string to its numeric value, defaulting to info.
func normalizeLevel(level string) int {
	if v, ok := levelNames[strings.ToLower(strings.TrimSpace(level))]; ok {
		return v
	}
	return levelInfo
}

// isTerminal reports whether the writer is a TTY that supports colors.
// NO_COLOR is honored through the color library's global flag.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Trace logs at trace level.
func (cl *ConsoleLogger) Trace(format string, args ...interface{}) {
	cl.log(levelTrace, "TRACE", color.FgHiBlack, format, args...)
}

// Debug logs at debug level.
func (cl *ConsoleLogger) Debug(format string, args ...interface{}) {
	cl.log(levelDebug, "DEBUG", color.FgHiBlack, format, args...)
}

// Info logs at info level.
func (cl *ConsoleLogger) Info(format string, args ...interface{}) {
	cl.log(levelInfo, "INFO", color.FgCyan, format, args...)
}

// Warn logs at warn level.
func (cl *ConsoleLogger) Warn(format string, args ...interface{}) {
	cl.log(levelWarn, "WARN", color.FgYellow, format, args...)
}

// Error logs at error level.
func (cl *ConsoleLogger) Error(format string, args ...interface{}) {
	cl.log(levelError, "ERROR", color.FgRed, format, args...)
}

func (cl *ConsoleLogger) log(level int, tag string, attr color.Attribute, format string, args ...interface{}) {
	if cl.writer == nil || level < cl.level {
		return
	}

	timestamp := time.Now().Format("15:04:05")
	message := fmt.Sprintf(format, args...)
	label := tag
	if cl.colorOutput {
		label = color.New(attr).Sprint(tag)
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	fmt.Fprintf(cl.writer, "[%s] %s %s\n", timestamp, label, message)
}
