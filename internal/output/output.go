// Package output provides formatted output utilities for the CLI.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Writer handles CLI output formatting.
type Writer struct {
	out     io.Writer
	err     io.Writer
	color   bool
	quiet   bool
	verbose bool
}

// New creates a new Writer with default settings.
func New() *Writer {
	return &Writer{
		out:   os.Stdout,
		err:   os.Stderr,
		color: isTerminal(),
	}
}

// NewWithWriters creates a Writer with custom io.Writers (for testing).
func NewWithWriters(out, err io.Writer, color bool) *Writer {
	return &Writer{
		out:   out,
		err:   err,
		color: color,
	}
}

// SetQuiet enables or disables quiet mode.
func (w *Writer) SetQuiet(quiet bool) {
	w.quiet = quiet
}

// SetVerbose enables or disables verbose mode.
func (w *Writer) SetVerbose(verbose bool) {
	w.verbose = verbose
}

// Verbose reports whether verbose mode is enabled.
func (w *Writer) Verbose() bool {
	return w.verbose
}

// Stdout returns the underlying stdout writer.
// Used for streaming subprocess output in verbose mode.
func (w *Writer) Stdout() io.Writer {
	return w.out
}

// Print writes to stdout.
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line to stdout.
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Error writes to stderr.
func (w *Writer) Error(format string, args ...interface{}) {
	fmt.Fprintf(w.err, format, args...)
}

// Errorln writes a line to stderr.
func (w *Writer) Errorln(format string, args ...interface{}) {
	fmt.Fprintf(w.err, format+"\n", args...)
}

// Info prints an info message (skipped in quiet mode).
func (w *Writer) Info(format string, args ...interface{}) {
	if w.quiet {
		return
	}
	w.Println(format, args...)
}

// Detail prints a detail message (only in verbose mode).
func (w *Writer) Detail(format string, args ...interface{}) {
	if !w.verbose {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Println("%s%s%s", dim, msg, reset)
	} else {
		w.Println("%s", msg)
	}
}

// Warning prints a warning message to stderr.
func (w *Writer) Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Errorln("%swarning:%s %s", yellow, reset, msg)
	} else {
		w.Errorln("warning: %s", msg)
	}
}

// ErrorPrefix prints an error message with parsecheck prefix to stderr.
func (w *Writer) ErrorPrefix(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Errorln("%sparsecheck:%s %s", red, reset, msg)
	} else {
		w.Errorln("parsecheck: %s", msg)
	}
}

// FixtureStart prints the start of a fixture run (verbose mode only).
func (w *Writer) FixtureStart(fixture string) {
	if !w.verbose {
		return
	}
	label := fmt.Sprintf("─── %s ───", fixture)
	if w.color {
		w.Println("%s%s%s", bold+cyan, label, reset)
	} else {
		w.Println("%s", label)
	}
}

// FixturePassed prints a per-fixture pass line (verbose mode only).
func (w *Writer) FixturePassed(fixture, duration string) {
	if !w.verbose {
		return
	}
	if w.color {
		w.Println("%s✓%s %s %s%s%s", green, reset, fixture, dim, duration, reset)
	} else {
		w.Println("+ %s %s", fixture, duration)
	}
}

// FixtureFailed prints the immediate per-fixture failure notice.
// Always printed, regardless of quiet mode.
func (w *Writer) FixtureFailed(fixture string) {
	if w.color {
		w.Println("%s✗ Failed:%s %s", red, reset, fixture)
	} else {
		w.Println("Failed: %s", fixture)
	}
}

// FixtureSkipped prints a per-fixture skip notice to stderr.
func (w *Writer) FixtureSkipped(fixture, reason string) {
	if w.color {
		w.Errorln("%sskipped:%s %s (%s)", yellow, reset, fixture, reason)
	} else {
		w.Errorln("skipped: %s (%s)", fixture, reason)
	}
}

// List prints a list of items.
func (w *Writer) List(items []string) {
	for _, item := range items {
		w.Println("  - %s", item)
	}
}

// SummaryItem prints a labeled summary item with value.
func (w *Writer) SummaryItem(label, value string) {
	if w.color {
		w.Println("  %s%s:%s %s", dim, label, reset, value)
	} else {
		w.Println("  %s: %s", label, value)
	}
}

// FinalSuccess prints a final success message.
func (w *Writer) FinalSuccess(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Println("%s%s%s", green, msg, reset)
	} else {
		w.Println("%s", msg)
	}
}

// FinalFailure prints a final failure message.
func (w *Writer) FinalFailure(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Println("%s%s%s", red, msg, reset)
	} else {
		w.Println("%s", msg)
	}
}

// ValidationSuccess prints a validation success message.
func (w *Writer) ValidationSuccess(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Println("%s%s%s %s", green, "✓", reset, msg)
	} else {
		w.Println("%s", msg)
	}
}

// Hint prints a hint message for the user.
func (w *Writer) Hint(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Println("%s%s%s", dim, msg, reset)
	} else {
		w.Println("%s", msg)
	}
}

// isTerminal returns true if stdout is a terminal.
func isTerminal() bool {
	// Simple check - could be enhanced with golang.org/x/term
	if fi, _ := os.Stdout.Stat(); fi != nil {
		return (fi.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

// Semantic color roles for help output.
const (
	colorTitle       = bold + cyan   // Main title/brand
	colorSection     = bold + yellow // Section headers
	colorCommand     = bold + cyan   // Commands and subcommands
	colorPlaceholder = green         // Placeholders like <shell>, <path>
	colorFlag        = yellow        // Flags like --config
	colorDescription = dim           // Help text descriptions
	colorExample     = cyan          // Example commands
)

// HelpTitle formats the main help title line.
func (w *Writer) HelpTitle(title string) {
	if w.color {
		w.Println("%s%s%s", colorTitle, title, reset)
	} else {
		w.Println("%s", title)
	}
}

// HelpSection formats a section header (e.g., "Commands:").
func (w *Writer) HelpSection(title string) {
	w.Println("")
	if w.color {
		w.Println("%s%s%s", colorSection, title, reset)
	} else {
		w.Println("%s", title)
	}
}

// HelpCommand formats a command with its description.
func (w *Writer) HelpCommand(name, description string, width int) {
	if w.color {
		coloredName := w.colorPlaceholders(name)
		// Calculate display width (name without ANSI codes)
		padding := width - len(name)
		if padding < 0 {
			padding = 0
		}
		w.Println("  %s%s%s%s  %s%s%s", colorCommand, coloredName, reset, strings.Repeat(" ", padding), colorDescription, description, reset)
	} else {
		w.Println("  %-*s  %s", width, name, description)
	}
}

// HelpFlag formats a flag with its description.
func (w *Writer) HelpFlag(name, description string, width int) {
	if w.color {
		coloredName := w.colorPlaceholders(name)
		padding := width - len(name)
		if padding < 0 {
			padding = 0
		}
		w.Println("  %s%s%s%s  %s%s%s", colorFlag, coloredName, reset, strings.Repeat(" ", padding), colorDescription, description, reset)
	} else {
		w.Println("  %-*s  %s", width, name, description)
	}
}

// HelpExample formats an example command with description.
func (w *Writer) HelpExample(command, description string) {
	if w.color {
		w.Println("  %s%s%s", colorExample, command, reset)
		if description != "" {
			w.Println("      %s%s%s", colorDescription, description, reset)
		}
	} else {
		w.Println("  %s", command)
		if description != "" {
			w.Println("      %s", description)
		}
	}
}

// HelpUsage formats usage lines.
func (w *Writer) HelpUsage(usage string) {
	if w.color {
		colored := w.colorPlaceholders(usage)
		w.Println("  %s", colored)
	} else {
		w.Println("  %s", usage)
	}
}

// colorPlaceholders highlights <placeholder> patterns in text.
func (w *Writer) colorPlaceholders(text string) string {
	var result strings.Builder
	i := 0
	for i < len(text) {
		if text[i] == '<' {
			// Find closing >
			end := strings.Index(text[i:], ">")
			if end != -1 {
				// Found a placeholder
				placeholder := text[i : i+end+1]
				result.WriteString(reset)
				result.WriteString(colorPlaceholder)
				result.WriteString(placeholder)
				result.WriteString(reset)
				i += end + 1
				continue
			}
		}
		result.WriteByte(text[i])
		i++
	}
	return result.String()
}
