package scrub

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := scrubber.ScrubFile(ctx, req)
//	if errors.Is(err, scrub.ErrUnterminatedBlockComment) {
//	    // Input ended inside /* ...
//	}
var (
	// ErrInputNotFound indicates the input file does not exist.
	ErrInputNotFound = errors.New("input not found")

	// ErrInputReadFailure indicates the input exists but could not be read.
	ErrInputReadFailure = errors.New("input read failure")

	// ErrOutputWriteFailure indicates the scrubbed output could not be written.
	ErrOutputWriteFailure = errors.New("output write failure")

	// ErrUnterminatedBlockComment indicates end of input inside a block comment.
	ErrUnterminatedBlockComment = errors.New("unterminated block comment")

	// ErrUnterminatedStringLiteral indicates end of input inside a string,
	// char or raw string literal.
	ErrUnterminatedStringLiteral = errors.New("unterminated string literal")

	// ErrInvalidHeaderLineCount indicates a negative header line count or
	// one larger than the number of lines in the input.
	ErrInvalidHeaderLineCount = errors.New("invalid header line count")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// usageErrorMarkers are message fragments produced by cobra and pflag
// when the command line itself is malformed.
var usageErrorMarkers = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"arg(s), received",
	"missing required argument",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrInvalidHeaderLineCount):
		return ExitConfigError
	case errors.Is(err, ErrInputNotFound):
		return ExitInputNotFound
	case errors.Is(err, ErrInputReadFailure):
		return ExitInputReadFailure
	case errors.Is(err, ErrOutputWriteFailure):
		return ExitOutputWriteFailure
	case errors.Is(err, ErrUnterminatedBlockComment), errors.Is(err, ErrUnterminatedStringLiteral):
		return ExitUnterminated
	}

	errStr := err.Error()
	for _, marker := range usageErrorMarkers {
		if strings.Contains(errStr, marker) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
