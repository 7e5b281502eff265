// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package errors provides structured error handling for the divdemo CLI.
//
// This package defines UserError, a type that carries structured error
// information: what went wrong, why it happened, and how to fix it. It also
// defines the exit codes the CLI uses.
//
// The demo's own failure, a division by zero, is not a UserError: it is
// recovered inside the demo and never reaches this package. UserError covers
// the failures around it, such as bad flags or an unwritable stdout.
//
// # Usage Example
//
//	err := errors.NewInputError(
//	    "Unknown output format",
//	    `"xml" is not one of text, json, yaml`,
//	    "Run: divdemo --output json",
//	)
//	return errors.Report(os.Stderr, err, false)
//
// # Formatted Output
//
// The Format() method provides colored terminal output:
//
//	Error: Unknown output format
//	Cause: "xml" is not one of text, json, yaml
//	Fix:   Run: divdemo --output json
//
// For JSON output, ToJSON returns a structure with "error", "cause", "fix"
// and "exit_code" fields.
//
// # Exit Codes
//
//   - ExitSuccess (0): Successful execution, including a recovered division
//   - ExitInput (4): Invalid user input (bad arguments or flag values)
//   - ExitInternal (10): Internal errors (write failures, bugs)
package errors

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Exit codes for different error categories.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitInput indicates invalid user input (bad arguments, flag values).
	ExitInput = 4

	// ExitInternal indicates internal errors (failed writes, unexpected states).
	// Exit code 10 signals "this is a bug or an environment problem".
	ExitInternal = 10
)

// UserError represents an error with structured context for end users.
type UserError struct {
	// Message describes what went wrong in user-friendly language.
	Message string

	// Cause explains why the error occurred.
	Cause string

	// Fix provides an actionable suggestion on how to resolve the error.
	Fix string

	// ExitCode is the exit code to use when exiting due to this error.
	ExitCode int

	// Err is the underlying error, if any. It is exposed through Unwrap.
	Err error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is and errors.As.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewInputError creates an input validation error with exit code ExitInput.
// Input errors do not wrap an underlying error.
func NewInputError(msg, cause, fix string) *UserError {
	return &UserError{
		Message:  msg,
		Cause:    cause,
		Fix:      fix,
		ExitCode: ExitInput,
	}
}

// NewInternalError creates an internal error with exit code ExitInternal.
func NewInternalError(msg, cause, fix string, err error) *UserError {
	return &UserError{
		Message:  msg,
		Cause:    cause,
		Fix:      fix,
		ExitCode: ExitInternal,
		Err:      err,
	}
}

// Color definitions for error formatting.
var (
	colorError = color.New(color.FgRed, color.Bold)
	colorCause = color.New(color.FgYellow)
	colorFix   = color.New(color.FgGreen)
)

// Format returns a formatted error message for terminal display.
//
// Empty Cause or Fix fields are omitted. Color output respects NO_COLOR and
// can be disabled with noColor. The global color.NoColor state is restored
// before returning.
func (e *UserError) Format(noColor bool) string {
	originalNoColor := color.NoColor
	defer func() { color.NoColor = originalNoColor }()

	if noColor || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	var out strings.Builder
	out.WriteString(colorError.Sprint("Error: "))
	out.WriteString(e.Message)
	out.WriteString("\n")

	if e.Cause != "" {
		out.WriteString(colorCause.Sprint("Cause: "))
		out.WriteString(e.Cause)
		out.WriteString("\n")
	}

	if e.Fix != "" {
		out.WriteString(colorFix.Sprint("Fix:   "))
		out.WriteString(e.Fix)
		out.WriteString("\n")
	}

	return out.String()
}

// ErrorJSON represents error information in JSON format.
type ErrorJSON struct {
	Error    string `json:"error"`
	Cause    string `json:"cause,omitempty"`
	Fix      string `json:"fix,omitempty"`
	ExitCode int    `json:"exit_code"`
}

// ToJSON converts the UserError to a JSON-serializable structure.
func (e *UserError) ToJSON() ErrorJSON {
	return ErrorJSON{
		Error:    e.Message,
		Cause:    e.Cause,
		Fix:      e.Fix,
		ExitCode: e.ExitCode,
	}
}

// Report writes err to w and returns the exit code the process should use.
//
// The error is written with Format, or as JSON when jsonOutput is set.
// A nil error writes nothing and returns ExitSuccess.
func Report(w io.Writer, err *UserError, jsonOutput bool) int {
	if err == nil {
		return ExitSuccess
	}

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(err.ToJSON())
	} else {
		fmt.Fprint(w, err.Format(false))
	}
	return err.ExitCode
}
