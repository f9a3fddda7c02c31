package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/scrub/internal/files/filesystem"
	"github.com/vvka-141/scrub/internal/report"
	"github.com/vvka-141/scrub/internal/services"
)

// rootFlags holds flags shared by every command plus the single-file ones.
var rootFlags struct {
	output       string
	headerLines  int
	verbose      bool
	dryRun       bool
	detectHeader bool
	yes          bool
	report       string
	config       string
	rawStrings   bool
	lifetimes    bool
}

var rootCmd = &cobra.Command{
	Use:   "scrub <input>",
	Short: "Remove comments from source files",
	Long: `scrub copies a source file with every // line comment and /* block */ comment
removed. Code, string and character literals, and an optional number of
leading header lines are kept byte for byte.

Comment-like text inside "strings" and 'c'haracter literals is never touched.
Line numbers are stable: removed block comments keep their newlines, so every
code line stays on the line number it had in the input.

Without --output the scrubbed text is written to stdout.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or header line count
  11 - Input file not found
  12 - Input file could not be read
  13 - Output file could not be written
  14 - Unterminated block comment or literal in input`,
	Example: `  scrub main.rs -o clean.rs
  scrub main.rs -H 3 -o clean.rs      # keep a 3-line license header
  scrub main.rs --dry-run --report unified
  scrub main.rs --detect-header --yes > clean.rs`,
	Args:         RequireInputPath,
	RunE:         runScrub,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr())
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Bool("help", false, "Help for scrub")
	pf.BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Log each removed comment, statistics and checksums to stderr")
	pf.IntVarP(&rootFlags.headerLines, "header-lines", "H", 0, "Number of leading lines to keep verbatim")
	pf.BoolVarP(&rootFlags.dryRun, "dry-run", "d", false, "Report what would change without writing anything")
	pf.BoolVar(&rootFlags.detectHeader, "detect-header", false, "Detect a leading comment header and ask whether to keep it")
	pf.BoolVarP(&rootFlags.yes, "yes", "y", false, "Keep detected headers without asking")
	pf.StringVar(&rootFlags.report, "report", "table", "Dry-run report format: table, unified or summary")
	pf.StringVar(&rootFlags.config, "config", "", "Path to a config file (default ./.scrub.yaml if present)")
	pf.BoolVar(&rootFlags.rawStrings, "raw-strings", true, `Recognize raw string literals such as r"..." and r#"..."#`)
	pf.BoolVar(&rootFlags.lifetimes, "lifetimes", false, "Treat 'a after an identifier boundary as a lifetime, not a char literal")

	rootCmd.Flags().StringVarP(&rootFlags.output, "output", "o", "", "Output file (default stdout)")
}

func runScrub(cmd *cobra.Command, args []string) error {
	st, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd, st.verbose)
	scrubber := newScrubber(cmd, filesystem.NewOSFileSystem(), logger, st)

	input := args[0]
	result, err := scrubber.ScrubFile(commandContext(cmd), services.Request{
		Input:        input,
		Output:       rootFlags.output,
		HeaderLines:  st.headerLines,
		DetectHeader: rootFlags.detectHeader,
		DryRun:       rootFlags.dryRun,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case rootFlags.dryRun:
		return report.Render(out, input, result.Report, st.report)
	case rootFlags.output == "":
		_, err := fmt.Fprint(out, result.Output)
		return err
	}

	if result.Written {
		logger.Verbose("Scrubbed %s -> %s", input, rootFlags.output)
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// resetRootFlags restores flag defaults between in-process runs.
func resetRootFlags() {
	rootFlags.output = ""
	rootFlags.headerLines = 0
	rootFlags.verbose = false
	rootFlags.dryRun = false
	rootFlags.detectHeader = false
	rootFlags.yes = false
	rootFlags.report = "table"
	rootFlags.config = ""
	rootFlags.rawStrings = true
	rootFlags.lifetimes = false
}
