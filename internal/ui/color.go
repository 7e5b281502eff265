// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package ui provides colored line output for the divdemo CLI.
//
// Output goes through a Printer bound to an io.Writer so that the demo can be
// run against a buffer in tests. Colors respect the --no-color flag and the
// NO_COLOR environment variable, and are disabled automatically when stdout
// is not a TTY (e.g., when piped). Only the escape sequences differ between
// colored and plain output; the line text is identical.
//
// Color usage guidelines:
//   - Cyan: Neutral status lines
//   - Green: Results
//   - Yellow: Recovered failures
package ui

import (
	"io"

	"github.com/fatih/color"
)

// Pre-configured color instances for consistent CLI output.
var (
	// Yellow is used for recovered failures.
	Yellow = color.New(color.FgYellow)

	// Green is used for computed results.
	Green = color.New(color.FgGreen)

	// Cyan is used for neutral status lines.
	Cyan = color.New(color.FgCyan)
)

// InitColors configures global color output based on the noColor flag.
//
// Call it early in main() after parsing flags. A false value leaves the
// library's own TTY and NO_COLOR detection in place.
func InitColors(noColor bool) {
	if noColor {
		color.NoColor = true
	}
}

// Printer writes whole lines to an underlying writer.
type Printer struct {
	w io.Writer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Info writes a cyan status line.
func (p *Printer) Info(msg string) error {
	return p.line(Cyan, msg)
}

// Success writes a green result line.
func (p *Printer) Success(msg string) error {
	return p.line(Green, msg)
}

// Warning writes a yellow line for a failure that was recovered.
func (p *Printer) Warning(msg string) error {
	return p.line(Yellow, msg)
}

func (p *Printer) line(c *color.Color, msg string) error {
	_, err := c.Fprintln(p.w, msg)
	return err
}
