// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/linsys/report"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution (any classification, including no solution)
	ExitFailure      = 1 // Verification failure (residual too large, methods disagree)
	ExitCommandError = 2 // Command error (unreadable system, bad flag value, etc.)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter routes results to the configured encoding.
// Text goes through the report text writers; everything else is a single
// structured document per command.
type OutputFormatter struct {
	Format    report.Format
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// Text reports whether human-readable output was requested.
func (f *OutputFormatter) Text() bool {
	return f.Format == report.FormatText
}

// Structured encodes v as JSON, YAML or CBOR.
func (f *OutputFormatter) Structured(v any) error {
	return report.Encode(f.Writer, f.Format, v)
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Structured formats keep stdout clean, so diagnostics always go to ErrWriter.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
