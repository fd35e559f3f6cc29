package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// ruleWidth is the width of headers and separators
const ruleWidth = 70

// UI writes user-facing progress and check results. Everything goes to a
// single writer, stderr by default, so stdout stays free for reports.
type UI struct {
	output         io.Writer
	nonInteractive bool // If true, don't prompt user for input

	info    *color.Color
	success *color.Color
	warning *color.Color
	failure *color.Color
	heading *color.Color
}

// New creates a UI writing to stderr
func New() *UI {
	return &UI{
		output:  os.Stderr,
		info:    color.New(color.FgBlue),
		success: color.New(color.FgGreen),
		warning: color.New(color.FgYellow),
		failure: color.New(color.FgRed),
		heading: color.New(color.FgCyan, color.Bold),
	}
}

// NewWithWriter creates a UI with custom output writer (useful for testing)
func NewWithWriter(w io.Writer) *UI {
	u := New()
	u.output = w
	return u
}

// SetNonInteractive enables or disables non-interactive mode
func (u *UI) SetNonInteractive(enabled bool) {
	u.nonInteractive = enabled
}

// IsNonInteractive returns true if non-interactive mode is enabled
func (u *UI) IsNonInteractive() bool {
	return u.nonInteractive
}

// Writer returns the writer all output goes to
func (u *UI) Writer() io.Writer {
	return u.output
}

func (u *UI) tagged(c *color.Color, tag, msg string) {
	c.Fprintf(u.output, "[%s] %s\n", tag, msg)
}

// Info prints an info message
func (u *UI) Info(msg string) { u.tagged(u.info, "INFO", msg) }

// Infof prints a formatted info message
func (u *UI) Infof(format string, args ...interface{}) { u.Info(fmt.Sprintf(format, args...)) }

// Success prints a success message
func (u *UI) Success(msg string) { u.tagged(u.success, "✓", msg) }

// Successf prints a formatted success message
func (u *UI) Successf(format string, args ...interface{}) { u.Success(fmt.Sprintf(format, args...)) }

// Warning prints a warning message
func (u *UI) Warning(msg string) { u.tagged(u.warning, "WARNING", msg) }

// Warningf prints a formatted warning message
func (u *UI) Warningf(format string, args ...interface{}) { u.Warning(fmt.Sprintf(format, args...)) }

// Error prints an error message
func (u *UI) Error(msg string) { u.tagged(u.failure, "ERROR", msg) }

// Errorf prints a formatted error message
func (u *UI) Errorf(format string, args ...interface{}) { u.Error(fmt.Sprintf(format, args...)) }

// Step prints a section title between blank lines
func (u *UI) Step(title string) {
	fmt.Fprintln(u.output)
	u.heading.Fprintf(u.output, "==> %s\n", title)
	fmt.Fprintln(u.output)
}

// Header prints a title framed by rules
func (u *UI) Header(title string) {
	rule := strings.Repeat("=", ruleWidth)

	fmt.Fprintln(u.output)
	u.heading.Fprintln(u.output, rule)
	u.heading.Fprintf(u.output, "  %s\n", title)
	u.heading.Fprintln(u.output, rule)
	fmt.Fprintln(u.output)
}

// Separator prints a separator line
func (u *UI) Separator() {
	u.heading.Fprintln(u.output, strings.Repeat("-", ruleWidth))
}

// Print prints a plain message without formatting
func (u *UI) Print(msg string) {
	fmt.Fprintln(u.output, msg)
}

// Printf prints a formatted plain message
func (u *UI) Printf(format string, args ...interface{}) {
	fmt.Fprintf(u.output, format+"\n", args...)
}

// CheckPassed prints a passed check line
func (u *UI) CheckPassed(name string) {
	u.success.Fprintf(u.output, "  ✓ %s\n", name)
}

// CheckFailed prints a failed check line with its reason
func (u *UI) CheckFailed(name, reason string) {
	u.failure.Fprintf(u.output, "  ✗ %s: %s\n", name, reason)
}

// CheckWarned prints a warning-only check line with its reason
func (u *UI) CheckWarned(name, reason string) {
	u.warning.Fprintf(u.output, "  ! %s: %s\n", name, reason)
}
