// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package errors

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestUserError_Error verifies the Error() method implementation.
func TestUserError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *UserError
		want string
	}{
		{
			name: "with underlying error",
			err: &UserError{
				Message: "Cannot write output",
				Err:     fmt.Errorf("broken pipe"),
			},
			want: "Cannot write output: broken pipe",
		},
		{
			name: "without underlying error",
			err:  &UserError{Message: "Unknown output format"},
			want: "Unknown output format",
		},
		{
			name: "empty message with underlying error",
			err:  &UserError{Err: fmt.Errorf("some error")},
			want: ": some error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.want {
				t.Errorf("UserError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestExitCodes verifies that exit code constants have the expected values.
func TestExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		exitCode int
		want     int
	}{
		{"ExitSuccess", ExitSuccess, 0},
		{"ExitInput", ExitInput, 4},
		{"ExitInternal", ExitInternal, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.exitCode != tt.want {
				t.Errorf("%s = %d, want %d", tt.name, tt.exitCode, tt.want)
			}
		})
	}
}

// TestConstructors verifies that constructor functions set every field.
func TestConstructors(t *testing.T) {
	underlyingErr := fmt.Errorf("underlying error")

	input := NewInputError("msg", "cause", "fix")
	if input.Message != "msg" || input.Cause != "cause" || input.Fix != "fix" {
		t.Errorf("NewInputError fields = %+v", input)
	}
	if input.ExitCode != ExitInput {
		t.Errorf("NewInputError ExitCode = %d, want %d", input.ExitCode, ExitInput)
	}
	if input.Err != nil {
		t.Errorf("NewInputError Err = %v, want nil", input.Err)
	}

	internal := NewInternalError("msg", "cause", "fix", underlyingErr)
	if internal.ExitCode != ExitInternal {
		t.Errorf("NewInternalError ExitCode = %d, want %d", internal.ExitCode, ExitInternal)
	}
	if internal.Unwrap() != underlyingErr {
		t.Errorf("NewInternalError Unwrap() = %v, want %v", internal.Unwrap(), underlyingErr)
	}
}

// TestErrorChain verifies compatibility with errors.Is and errors.As.
func TestErrorChain(t *testing.T) {
	sentinel := fmt.Errorf("sentinel error")
	wrapped := fmt.Errorf("wrapped: %w", sentinel)
	userErr := NewInternalError("write failed", "cause", "fix", wrapped)

	if !errors.Is(userErr, sentinel) {
		t.Error("errors.Is should find sentinel error in chain")
	}

	outer := fmt.Errorf("run: %w", userErr)
	var target *UserError
	if !errors.As(outer, &target) {
		t.Fatal("errors.As should extract UserError")
	}
	if target.ExitCode != ExitInternal {
		t.Errorf("ExitCode = %d, want %d", target.ExitCode, ExitInternal)
	}
}

// TestUserError_Format verifies the Format() method implementation.
func TestUserError_Format(t *testing.T) {
	tests := []struct {
		name    string
		err     *UserError
		want    []string
		notWant []string
	}{
		{
			name: "full error",
			err: &UserError{
				Message: "Unknown output format",
				Cause:   `"xml" is not one of text, json, yaml`,
				Fix:     "Run: divdemo --output json",
			},
			want: []string{
				"Error: Unknown output format\n",
				"Cause: \"xml\" is not one of text, json, yaml\n",
				"Fix:   Run: divdemo --output json\n",
			},
		},
		{
			name:    "message only",
			err:     &UserError{Message: "Something failed"},
			want:    []string{"Error: Something failed\n"},
			notWant: []string{"Cause:", "Fix:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Format(true)
			for _, substr := range tt.want {
				if !strings.Contains(got, substr) {
					t.Errorf("Format() output missing %q\nGot: %s", substr, got)
				}
			}
			for _, substr := range tt.notWant {
				if strings.Contains(got, substr) {
					t.Errorf("Format() output should not contain %q\nGot: %s", substr, got)
				}
			}
			if strings.Contains(got, "\x1b[") {
				t.Errorf("Format(true) output contains ANSI codes: %q", got)
			}
		})
	}
}

// TestUserError_Format_NoColor verifies that the NO_COLOR environment variable is respected.
func TestUserError_Format_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	output := NewInputError("Test error", "Test cause", "Test fix").Format(false)
	if strings.Contains(output, "\x1b[") {
		t.Error("Format() output contains ANSI codes despite NO_COLOR being set")
	}
}

// TestReport verifies the rendering and exit code of each error category.
func TestReport(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	t.Run("nil error", func(t *testing.T) {
		var buf bytes.Buffer
		if code := Report(&buf, nil, false); code != ExitSuccess {
			t.Errorf("Report(nil) = %d, want %d", code, ExitSuccess)
		}
		if buf.Len() != 0 {
			t.Errorf("Report(nil) wrote %q", buf.String())
		}
	})

	t.Run("user error as text", func(t *testing.T) {
		var buf bytes.Buffer
		code := Report(&buf, NewInputError("Unexpected argument", "cause", "fix"), false)
		if code != ExitInput {
			t.Errorf("exit code = %d, want %d", code, ExitInput)
		}
		if !strings.HasPrefix(buf.String(), "Error: Unexpected argument\n") {
			t.Errorf("unexpected output: %q", buf.String())
		}
	})

	t.Run("user error as JSON", func(t *testing.T) {
		var buf bytes.Buffer
		code := Report(&buf, NewInternalError("Cannot write output", "", "", fmt.Errorf("EPIPE")), true)
		if code != ExitInternal {
			t.Errorf("exit code = %d, want %d", code, ExitInternal)
		}

		var got ErrorJSON
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
		}
		if got.Error != "Cannot write output" || got.ExitCode != ExitInternal {
			t.Errorf("decoded = %+v", got)
		}
		if strings.Contains(buf.String(), "cause") {
			t.Errorf("empty cause should be omitted: %s", buf.String())
		}
	})
}
