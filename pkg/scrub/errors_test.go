package scrub

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"input not found", fmt.Errorf("main.rs: %w", ErrInputNotFound), ExitInputNotFound},
		{"read failure", fmt.Errorf("main.rs: %w", ErrInputReadFailure), ExitInputReadFailure},
		{"write failure", fmt.Errorf("out.rs: %w", ErrOutputWriteFailure), ExitOutputWriteFailure},
		{"unterminated block", fmt.Errorf("wrap: %w", ErrUnterminatedBlockComment), ExitUnterminated},
		{"unterminated string", ErrUnterminatedStringLiteral, ExitUnterminated},
		{"header count", fmt.Errorf("%w: 9", ErrInvalidHeaderLineCount), ExitConfigError},
		{"config", ErrInvalidConfig, ExitConfigError},
		{"joined takes first match", errors.Join(fmt.Errorf("a: %w", ErrInputNotFound), ErrOutputWriteFailure), ExitInputNotFound},
		{"unknown flag", errors.New("unknown flag: --nope"), ExitUsageError},
		{"unknown shorthand", errors.New("unknown shorthand flag: 'z' in -z"), ExitUsageError},
		{"arg count", errors.New("accepts 1 arg(s), received 0"), ExitUsageError},
		{"bad int flag", errors.New(`invalid argument "x" for "-H, --header-lines" flag`), ExitUsageError},
		{"flag without value", errors.New("flag needs an argument: --output"), ExitUsageError},
		{"unclassified", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrInputNotFound,
		ErrInputReadFailure,
		ErrOutputWriteFailure,
		ErrUnterminatedBlockComment,
		ErrUnterminatedStringLiteral,
		ErrInvalidHeaderLineCount,
		ErrInvalidConfig,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v should not match %v", a, b)
			}
		}
	}
}
