// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package output provides machine-readable rendering for the divdemo CLI.
//
// The default text output is written line by line through the ui package.
// This package handles the structured alternatives selected with --output:
// pretty-printed JSON and YAML, both with 2-space indentation.
//
// # Usage
//
//	format, err := output.ParseFormat("yaml")
//	if err != nil {
//	    return err
//	}
//	if err := output.Write(os.Stdout, format, report); err != nil {
//	    return err
//	}
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Format selects how a run is rendered.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the accepted --output values in display order.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat returns the Format named by s. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Structured reports whether the format is rendered by this package
// rather than as text lines.
func (f Format) Structured() bool {
	return f == FormatJSON || f == FormatYAML
}

// Write renders data to w in a structured format.
func Write(w io.Writer, f Format, data any) error {
	switch f {
	case FormatJSON:
		return JSONTo(w, data)
	case FormatYAML:
		return YAMLTo(w, data)
	default:
		return fmt.Errorf("format %q is not structured", f)
	}
}

// JSONTo writes data as pretty-printed JSON to the specified writer.
//
// Returns an error if JSON encoding fails (e.g., for unencodable types
// like channels or functions) or the writer fails.
func JSONTo(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("JSON encoding failed: %w", err)
	}
	return nil
}
