// Package log provides colored terminal output for icongen.
// Every line is written to Output, which defaults to stdout.
package log

import (
	"fmt"
	"io"
	"os"
)

// ANSI escape codes for terminal colors.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorCyan   = "\033[0;36m"
	colorWhite  = "\033[1;37m"
)

const sectionLine = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// Output receives all log lines. Tests swap it for a buffer.
var Output io.Writer = os.Stdout

// OsExit is the function called by Fatal to terminate the process.
var OsExit = os.Exit

func line(color, tag, msg string) {
	fmt.Fprintf(Output, "%s[%s]%s %s\n", color, tag, colorReset, msg)
}

// Info prints a white [INFO] message.
func Info(msg string) { line(colorWhite, "INFO", msg) }

// Success prints a green [SUCCESS] message.
func Success(msg string) { line(colorGreen, "SUCCESS", msg) }

// Warning prints a yellow [WARNING] message.
func Warning(msg string) { line(colorYellow, "WARNING", msg) }

// Error prints a red [ERROR] message.
func Error(msg string) { line(colorRed, "ERROR", msg) }

// Fatal prints a red [ERROR] message then exits with status 1.
func Fatal(msg string) {
	Error(msg)
	OsExit(1)
}

// Section prints a cyan box-draw banner around title.
func Section(title string) {
	fmt.Fprintf(Output, "\n%s%s%s\n", colorCyan, sectionLine, colorReset)
	fmt.Fprintf(Output, "%s%s%s\n", colorCyan, title, colorReset)
	fmt.Fprintf(Output, "%s%s%s\n\n", colorCyan, sectionLine, colorReset)
}
