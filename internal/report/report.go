// Package report compares an input with its scrubbed output line by line
// and renders the differences for dry runs.
package report

import (
	"strings"

	"github.com/vvka-141/scrub/pkg/scrub"
)

// Build compares original and scrubbed line by line. Line terminators are
// not part of the reported text. Build never fails and has no side effects.
func Build(original, scrubbed string, commentBytes, commentSpans int) *scrub.Report {
	before := strings.Split(original, "\n")
	after := strings.Split(scrubbed, "\n")

	n := len(before)
	if len(after) > n {
		n = len(after)
	}

	r := &scrub.Report{
		Original: original,
		Scrubbed: scrubbed,
	}
	for i := 0; i < n; i++ {
		a, b := lineAt(before, i), lineAt(after, i)
		if a == b {
			continue
		}
		r.Entries = append(r.Entries, scrub.ReportEntry{
			Line:     i + 1,
			Original: strings.TrimSuffix(a, "\r"),
			Scrubbed: strings.TrimSuffix(b, "\r"),
		})
	}

	r.Summary = scrub.ReportSummary{
		LinesChanged: len(r.Entries),
		CommentBytes: commentBytes,
		CommentSpans: commentSpans,
	}
	return r
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}
