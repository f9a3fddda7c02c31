package scrub

import "fmt"

// Kind classifies a span of scanned input.
type Kind int

const (
	// KindCode is retained text: code, whitespace, string and char literals.
	KindCode Kind = iota
	// KindLineComment runs from // up to, not including, the newline.
	KindLineComment
	// KindBlockComment runs from /* through the first */.
	KindBlockComment
)

// String returns the kind name used in verbose and report output.
func (k Kind) String() string {
	switch k {
	case KindCode:
		return "code"
	case KindLineComment:
		return "line comment"
	case KindBlockComment:
		return "block comment"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsComment reports whether spans of this kind are removed by scrubbing.
func (k Kind) IsComment() bool {
	return k == KindLineComment || k == KindBlockComment
}

// Span is a half-open byte range [Start, End) of scanned input with a single kind.
// A span sequence is contiguous: spans[i].End == spans[i+1].Start.
type Span struct {
	Start int
	End   int
	Kind  Kind
}

// Len returns the span length in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Text returns the slice of src covered by the span.
func (s Span) Text(src string) string {
	return src[s.Start:s.End]
}

// Position identifies a location in a source file.
// Line and Column are 1-based; Column counts runes, not bytes.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Removal records one comment removed from the input.
// Lines are absolute line numbers in the original file.
type Removal struct {
	Kind      Kind
	StartLine int
	EndLine   int
	Bytes     int
}

// Describe returns a one-line human readable description of the removal.
func (r Removal) Describe() string {
	if r.StartLine == r.EndLine {
		return fmt.Sprintf("Line %d: removed %s", r.StartLine, r.Kind)
	}
	return fmt.Sprintf("Lines %d-%d: removed %s", r.StartLine, r.EndLine, r.Kind)
}

// ReportEntry is one line that differs between the input and the scrubbed output.
type ReportEntry struct {
	Line     int
	Original string
	Scrubbed string
}

// ReportSummary totals a dry-run report.
type ReportSummary struct {
	LinesChanged int
	CommentBytes int
	CommentSpans int
}

// Report is the dry-run change report for one input.
type Report struct {
	Entries []ReportEntry
	Summary ReportSummary

	// Original and Scrubbed hold the compared texts so renderers can
	// produce alternate views such as unified diffs.
	Original string
	Scrubbed string
}

// Result is the aggregate product of scrubbing one input.
type Result struct {
	// Output is the scrubbed text, header included.
	Output string

	CommentBytes  int
	CommentSpans  int
	LineComments  int
	BlockComments int
	LinesChanged  int
	HeaderLines   int

	Removals []Removal
	Report   *Report

	InputChecksum  string
	OutputChecksum string

	// Written is true when Output was persisted to a destination file.
	Written bool
}

// Changed reports whether scrubbing altered the input.
func (r *Result) Changed() bool {
	return r.InputChecksum != r.OutputChecksum
}
