// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package demo drives one attempt-detect-recover sequence over the calculator.
//
// Run prints an introductory line, attempts a division and reports either
// the quotient or a fixed recovery message. A zero divisor is recovered here
// and never surfaces as an error; Run only fails when its output cannot be
// written.
package demo

import (
	"fmt"
	"log/slog"

	"github.com/kraklabs/divdemo/internal/calc"
	"github.com/kraklabs/divdemo/internal/metrics"
)

// Operands used by the divdemo binary.
const (
	DefaultDividend = 42
	DefaultDivisor  = 0
)

// Fixed output lines.
const (
	IntroLine    = "Does this work??"
	RecoveryLine = "Whoops!!"
	resultFormat = "The answer is %d"
)

// ResultLine returns the line reported for a successful division.
func ResultLine(quotient int) string {
	return fmt.Sprintf(resultFormat, quotient)
}

// Sink receives the demo's output lines. *ui.Printer implements it.
type Sink interface {
	Info(msg string) error
	Success(msg string) error
	Warning(msg string) error
}

// Discard is a Sink that drops every line.
var Discard Sink = discard{}

type discard struct{}

func (discard) Info(string) error    { return nil }
func (discard) Success(string) error { return nil }
func (discard) Warning(string) error { return nil }

// Options configures a run. The zero value divides 0 by 0; use Defaults for
// the operands the binary runs with.
type Options struct {
	Dividend int
	Divisor  int

	// Logger receives debug records. Nil disables logging.
	Logger *slog.Logger

	// Metrics counts the outcome. Nil disables counting.
	Metrics *metrics.Recorder
}

// Defaults returns Options with the binary's operands.
func Defaults() Options {
	return Options{Dividend: DefaultDividend, Divisor: DefaultDivisor}
}

// Report describes a finished run.
type Report struct {
	calc.Outcome `yaml:",inline"`

	State State    `json:"state" yaml:"state"`
	Lines []string `json:"lines" yaml:"lines"`
}

// Run executes the demo, writing its lines to sink.
//
// The returned error is non-nil only when sink fails; the report then holds
// the state reached so far.
func Run(sink Sink, opts Options) (Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	rep := Report{
		Outcome: calc.Outcome{Dividend: opts.Dividend, Divisor: opts.Divisor},
		State:   StateStart,
	}
	emit := func(write func(string) error, line string) error {
		rep.Lines = append(rep.Lines, line)
		return write(line)
	}

	if err := emit(sink.Info, IntroLine); err != nil {
		return rep, fmt.Errorf("write intro: %w", err)
	}

	logger.Debug("dividing", "dividend", opts.Dividend, "divisor", opts.Divisor)
	rep.Outcome = calc.New().Try(opts.Dividend, opts.Divisor)

	var err error
	if rep.OK() {
		rep.State = StateReportedResult
		err = emit(sink.Success, ResultLine(*rep.Quotient))
	} else {
		rep.State = StateReportedRecovery
		err = emit(sink.Warning, RecoveryLine)
	}
	if opts.Metrics != nil {
		opts.Metrics.ObserveDivision(rep.Kind.String())
	}
	if err != nil {
		return rep, fmt.Errorf("write %s: %w", rep.State, err)
	}

	if opts.Metrics != nil {
		opts.Metrics.ObserveRun()
	}
	logger.Debug("demo finished", "state", rep.State.String())
	return rep, nil
}
