package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/vvka-141/scrub/internal/files/filesystem"
	"github.com/vvka-141/scrub/internal/report"
	"github.com/vvka-141/scrub/internal/services"
)

var batchFlags struct {
	outDir  string
	inPlace bool
	workers int
	exclude []string
}

var batchCmd = &cobra.Command{
	Use:   "batch <pattern>...",
	Short: "Scrub every file matching glob patterns",
	Long: `Scrub every file matching one or more glob patterns. Patterns support **
for any number of directories; quote them so the shell does not expand them.

Each file is scrubbed independently. With --out-dir, outputs mirror the
directory layout below each pattern's fixed prefix. With --in-place, inputs
are rewritten; files that are already clean are left untouched.

A file that fails (unreadable, unterminated comment) never gets a partial
output and does not stop the others; the command exits with the first
failure's exit code.`,
	Example: `  scrub batch 'src/**/*.rs' --out-dir clean
  scrub batch 'src/**/*.c' 'include/**/*.h' --in-place --exclude 'vendor/**'
  scrub batch '**/*.rs' --dry-run --report summary`,
	Args:         RequirePatterns,
	RunE:         runBatch,
	SilenceUsage: true,
}

func init() {
	batchCmd.Flags().StringVar(&batchFlags.outDir, "out-dir", "", "Directory that receives scrubbed copies")
	batchCmd.Flags().BoolVar(&batchFlags.inPlace, "in-place", false, "Rewrite matched files in place")
	batchCmd.Flags().IntVar(&batchFlags.workers, "workers", 0, "Files scrubbed concurrently (default from config, else 4)")
	batchCmd.Flags().StringSliceVar(&batchFlags.exclude, "exclude", nil, "Glob of paths to skip (repeatable)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	st, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("workers") {
		st.workers = batchFlags.workers
	}

	logger := newLogger(cmd, st.verbose)
	scrubber := newScrubber(cmd, filesystem.NewOSFileSystem(), logger, st)

	result, err := scrubber.ScrubBatch(commandContext(cmd), services.BatchRequest{
		Patterns:     args,
		Exclude:      append(append([]string{}, st.exclude...), batchFlags.exclude...),
		OutDir:       batchFlags.outDir,
		InPlace:      batchFlags.inPlace,
		HeaderLines:  st.headerLines,
		DetectHeader: rootFlags.detectHeader,
		DryRun:       rootFlags.dryRun,
		Workers:      st.workers,
	})
	if result == nil {
		return err
	}

	out := cmd.OutOrStdout()
	if rootFlags.dryRun {
		for _, f := range result.Files {
			if f.Result == nil {
				continue
			}
			if renderErr := report.Render(out, f.Input, f.Result.Report, st.report); renderErr != nil {
				return renderErr
			}
		}
	}
	renderBatchTable(out, result, rootFlags.dryRun)

	return err
}

// renderBatchTable prints one row per file and a totals footer.
func renderBatchTable(w io.Writer, result *services.BatchResult, dryRun bool) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Output", "Lines", "Comment bytes", "Status"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})

	lines, bytes := 0, 0
	for _, f := range result.Files {
		output := f.Output
		if output == "" {
			output = "-"
		}
		if f.Result == nil {
			table.Append([]string{f.Input, output, "-", "-", "failed"})
			continue
		}
		lines += f.Result.LinesChanged
		bytes += f.Result.CommentBytes
		table.Append([]string{
			f.Input, output,
			strconv.Itoa(f.Result.LinesChanged),
			strconv.Itoa(f.Result.CommentBytes),
			fileStatus(f, dryRun),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d file(s)", len(result.Files)), "",
		strconv.Itoa(lines), strconv.Itoa(bytes),
		fmt.Sprintf("%d failed", result.Failed),
	})
	table.Render()
}

func fileStatus(f services.FileOutcome, dryRun bool) string {
	switch {
	case dryRun:
		return "dry run"
	case f.Result.Written:
		return "written"
	case !f.Result.Changed():
		return "clean"
	default:
		return "up to date"
	}
}

// resetBatchFlags restores flag defaults between in-process runs.
func resetBatchFlags() {
	batchFlags.outDir = ""
	batchFlags.inPlace = false
	batchFlags.workers = 0
	batchFlags.exclude = nil
}
