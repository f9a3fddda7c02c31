package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/vvka-141/scrub/pkg/scrub"
)

// Format selects how a report is rendered.
type Format string

const (
	FormatTable   Format = "table"
	FormatUnified Format = "unified"
	FormatSummary Format = "summary"
)

// ParseFormat validates a format name. The empty string selects FormatTable.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatTable:
		return FormatTable, nil
	case FormatUnified:
		return FormatUnified, nil
	case FormatSummary:
		return FormatSummary, nil
	}
	return "", fmt.Errorf("unknown report format %q (want table, unified or summary): %w", s, scrub.ErrInvalidConfig)
}

// Render writes the report for the named input to w.
func Render(w io.Writer, name string, r *scrub.Report, format Format) error {
	switch format {
	case FormatUnified:
		if err := renderUnified(w, name, r); err != nil {
			return err
		}
	case FormatSummary:
	default:
		renderTable(w, r)
	}
	_, err := fmt.Fprintln(w, SummaryLine(name, r.Summary))
	return err
}

// SummaryLine is the closing line of every rendered report.
func SummaryLine(name string, s scrub.ReportSummary) string {
	return fmt.Sprintf("%s: %d %s changed, %d comment %s removed in %d %s (dry run, nothing written)",
		name,
		s.LinesChanged, plural(s.LinesChanged, "line", "lines"),
		s.CommentBytes, plural(s.CommentBytes, "byte", "bytes"),
		s.CommentSpans, plural(s.CommentSpans, "span", "spans"))
}

func renderTable(w io.Writer, r *scrub.Report) {
	if len(r.Entries) == 0 {
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Line", "Original", "Scrubbed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, e := range r.Entries {
		table.Append([]string{strconv.Itoa(e.Line), display(e.Original), display(e.Scrubbed)})
	}
	table.Render()
}

func renderUnified(w io.Writer, name string, r *scrub.Report) error {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(r.Original),
		B:        difflib.SplitLines(r.Scrubbed),
		FromFile: name,
		ToFile:   name + " (scrubbed)",
		Context:  3,
	}
	return difflib.WriteUnifiedDiff(w, diff)
}

func display(line string) string {
	if strings.TrimSpace(line) == "" {
		return "(empty)"
	}
	return strings.ReplaceAll(line, "\t", "    ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
