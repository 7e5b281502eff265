// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package testing

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"

	"github.com/kraklabs/divdemo/internal/demo"
	"github.com/kraklabs/divdemo/internal/ui"
)

// ErrWriteFailed is returned by FailingWriter once its budget is spent.
var ErrWriteFailed = errors.New("write failed")

// NoColor disables colored output until the test finishes.
func NoColor(t *testing.T) {
	t.Helper()

	original := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = original })
}

// RunDemo runs the demo with colors disabled and returns its report and
// the text it printed. The test fails if the run returns an error.
//
// Example:
//
//	rep, out := testing.RunDemo(t, demo.Defaults())
func RunDemo(t *testing.T, opts demo.Options) (demo.Report, string) {
	t.Helper()
	NoColor(t)

	var buf bytes.Buffer
	rep, err := demo.Run(ui.NewPrinter(&buf), opts)
	if err != nil {
		t.Fatalf("demo.Run(%d, %d) failed: %v", opts.Dividend, opts.Divisor, err)
	}
	return rep, buf.String()
}

// FailingWriter accepts OK writes and fails every write after that.
type FailingWriter struct {
	OK     int
	writes int
}

// Write implements io.Writer.
func (w *FailingWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes > w.OK {
		return 0, ErrWriteFailed
	}
	return len(p), nil
}
