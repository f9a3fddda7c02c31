package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/scrub/internal/config"
	"github.com/vvka-141/scrub/internal/files/filesystem"
	"github.com/vvka-141/scrub/internal/lexer"
	"github.com/vvka-141/scrub/internal/logging"
	"github.com/vvka-141/scrub/internal/report"
	"github.com/vvka-141/scrub/internal/services"
	"github.com/vvka-141/scrub/internal/ui"
	"github.com/vvka-141/scrub/pkg/scrub"
)

// settings is the effective configuration of one command run.
type settings struct {
	headerLines int
	verbose     bool
	report      report.Format
	dialect     lexer.Dialect
	workers     int
	exclude     []string
}

// resolveSettings layers flags over environment over .scrub.yaml over defaults.
// Only flags the user actually set override the lower layers.
func resolveSettings(cmd *cobra.Command) (*settings, error) {
	cfg, err := config.Resolve(".", rootFlags.config)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("header-lines") {
		cfg.HeaderLines = rootFlags.headerLines
	}
	if flags.Changed("verbose") {
		cfg.Verbose = rootFlags.verbose
	}
	if flags.Changed("report") {
		cfg.Report = rootFlags.report
	}
	if flags.Changed("raw-strings") {
		cfg.RawStrings = rootFlags.rawStrings
	}
	if flags.Changed("lifetimes") {
		cfg.Lifetimes = rootFlags.lifetimes
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	format, err := report.ParseFormat(cfg.Report)
	if err != nil {
		return nil, err
	}

	return &settings{
		headerLines: cfg.HeaderLines,
		verbose:     cfg.Verbose,
		report:      format,
		dialect:     lexer.Dialect{RawStrings: cfg.RawStrings, Lifetimes: cfg.Lifetimes},
		workers:     cfg.Workers,
		exclude:     cfg.Exclude,
	}, nil
}

func newLogger(cmd *cobra.Command, verbose bool) scrub.Logger {
	return logging.NewWriterLogger(cmd.ErrOrStderr(), verbose)
}

func newScrubber(cmd *cobra.Command, fsys filesystem.FileSystemProvider, logger scrub.Logger, st *settings) *services.Scrubber {
	return services.NewScrubber(fsys, logger,
		services.WithScanner(lexer.New(lexer.WithDialect(st.dialect))),
		services.WithApprover(ui.NewApprover(cmd.ErrOrStderr(), rootFlags.yes, st.verbose)),
	)
}
