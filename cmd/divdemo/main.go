// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package main implements divdemo, which divides 42 by 0 and recovers.
//
// Usage:
//
//	divdemo                   Run the demo
//	divdemo --output json     Print the run as JSON
//	divdemo --metrics         Also print run counters to stderr
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/divdemo/internal/demo"
	"github.com/kraklabs/divdemo/internal/errors"
	"github.com/kraklabs/divdemo/internal/metrics"
	"github.com/kraklabs/divdemo/internal/output"
	"github.com/kraklabs/divdemo/internal/ui"
)

// Version information (set via ldflags during build)
var (
	version = "dev"     // Version string
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// GlobalFlags holds the parsed command-line flags.
type GlobalFlags struct {
	ShowVersion bool
	NoColor     bool
	Output      string
	Metrics     bool
	Debug       bool
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var globals GlobalFlags

	fs := flag.NewFlagSet("divdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&globals.ShowVersion, "version", false, "Show version and exit")
	fs.BoolVar(&globals.NoColor, "no-color", false, "Disable colored output")
	fs.StringVarP(&globals.Output, "output", "o", string(output.FormatText), "Output format: text, json, yaml")
	fs.BoolVar(&globals.Metrics, "metrics", false, "Print run counters to stderr in Prometheus text format")
	fs.BoolVar(&globals.Debug, "debug", false, "Enable debug logging (also DIVDEMO_DEBUG=1)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, `divdemo - divide 42 by 0 and recover

Prints an introductory line, attempts the division and reports either the
answer or a recovery message. The operands are fixed; a division by zero is
recovered and the exit status is 0.

Usage:
  divdemo [options]

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(stderr, `
Environment Variables:
  NO_COLOR       Disable colored output
  DIVDEMO_DEBUG  Enable debug logging
`)
	}

	err := fs.Parse(args)
	ui.InitColors(globals.NoColor)
	if err != nil {
		if err == flag.ErrHelp {
			return errors.ExitSuccess
		}
		return errors.Report(stderr, errors.NewInputError(
			"Invalid arguments",
			err.Error(),
			"Run: divdemo --help",
		), false)
	}

	format, err := output.ParseFormat(globals.Output)
	if err != nil {
		return errors.Report(stderr, errors.NewInputError(
			"Unknown output format",
			fmt.Sprintf("%q is not one of text, json, yaml", globals.Output),
			"Run: divdemo --output json",
		), false)
	}
	jsonErrors := format == output.FormatJSON

	if fs.NArg() > 0 {
		return errors.Report(stderr, errors.NewInputError(
			"Unexpected arguments",
			fmt.Sprintf("divdemo takes no arguments, got: %s", strings.Join(fs.Args(), " ")),
			"Run: divdemo",
		), jsonErrors)
	}

	if globals.ShowVersion {
		fmt.Fprintf(stdout, "divdemo version %s\n", version)
		fmt.Fprintf(stdout, "commit: %s\n", commit)
		fmt.Fprintf(stdout, "built: %s\n", date)
		return errors.ExitSuccess
	}

	opts := demo.Defaults()
	opts.Logger = newLogger(stderr, globals.Debug || debugEnv())
	opts.Metrics = metrics.New()

	var sink demo.Sink = ui.NewPrinter(stdout)
	if format.Structured() {
		sink = demo.Discard
	}

	rep, err := demo.Run(sink, opts)
	if err == nil && format.Structured() {
		err = output.Write(stdout, format, rep)
	}
	if err != nil {
		return errors.Report(stderr, errors.NewInternalError(
			"Cannot write output",
			"Standard output is closed or not writable",
			"Check the output redirection",
			err,
		), jsonErrors)
	}

	if globals.Metrics {
		if err := opts.Metrics.WriteText(stderr); err != nil {
			return errors.Report(stderr, errors.NewInternalError(
				"Cannot write metrics", "", "", err,
			), jsonErrors)
		}
	}
	return errors.ExitSuccess
}

// newLogger returns a text logger on w at Info level, or Debug when debug is set.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func debugEnv() bool {
	v := strings.ToLower(os.Getenv("DIVDEMO_DEBUG"))
	return v != "" && v != "0" && v != "false"
}
