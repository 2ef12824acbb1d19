// Package logging provides the small level-gated output sink used
// throughout the emulator and debugger for diagnostic and operator-facing
// messages (register dumps, assembler warnings, CLI traces).
package logging

import (
	"fmt"
	"io"
	"os"
)

// Logger writes leveled, Printf-style messages to an underlying writer.
// Info messages are only emitted when Verbose is set; Warn messages and
// unadorned Printf/Println output are always emitted.
type Logger struct {
	Writer  io.Writer
	Verbose bool
}

// New creates a Logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{Writer: w}
}

// Default returns a Logger writing to stderr.
func Default() *Logger {
	return New(os.Stderr)
}

// Infof writes a diagnostic message, gated on Verbose.
func (l *Logger) Infof(format string, args ...interface{}) {
	if l == nil || !l.Verbose {
		return
	}
	fmt.Fprintf(l.Writer, format, args...)
}

// Warnf writes a warning message, always emitted.
func (l *Logger) Warnf(format string, args ...interface{}) {
	if l == nil {
		return
	}
	fmt.Fprintf(l.Writer, "warning: "+format, args...)
}

// Printf writes an unadorned message, always emitted. Used for
// operator-facing output such as ebreak register dumps.
func (l *Logger) Printf(format string, args ...interface{}) {
	if l == nil {
		return
	}
	fmt.Fprintf(l.Writer, format, args...)
}

// Println writes a line, always emitted.
func (l *Logger) Println(args ...interface{}) {
	if l == nil {
		return
	}
	fmt.Fprintln(l.Writer, args...)
}
