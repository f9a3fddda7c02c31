package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireInputPath validates that exactly one input argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireInputPath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <input>

Usage: %s

Example:
  %s main.rs -o clean.rs`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequirePatterns validates that at least one glob pattern is provided.
func RequirePatterns(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <pattern>

Usage: %s

Example:
  %s 'src/**/*.rs' --out-dir clean`, cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}
