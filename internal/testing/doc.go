// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package testing provides test helpers for divdemo packages.
//
// # Quick Start
//
// Use RunDemo to run the demo against a buffer with colors disabled:
//
//	func TestScenario(t *testing.T) {
//	    rep, out := divtest.RunDemo(t, demo.Options{Dividend: 42, Divisor: 7})
//	    require.Equal(t, "Does this work??\nThe answer is 6\n", out)
//	    require.Equal(t, demo.StateReportedResult, rep.State)
//	}
//
// # Helpers
//
//   - NoColor: Disable fatih/color output for the rest of the test
//   - RunDemo: Run the demo into a buffer and return the report and text
//   - FailingWriter: An io.Writer that fails after a number of writes
package testing
