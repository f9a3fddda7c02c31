package header

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/vvka-141/scrub/internal/lexer"
	"github.com/vvka-141/scrub/pkg/scrub"
)

type lineKind int

const (
	lineBlank lineKind = iota
	lineComment
	lineCode
)

// maxBlankRun ends a header once this many blank lines follow a comment.
const maxBlankRun = 2

// Detect finds a leading license or documentation header: the run of lines
// holding only comments and blank lines before the first line of code.
// Comments that share a line with code never belong to the header, and the
// header never ends inside a block comment. Input that does not scan has no
// header.
func Detect(src string, scanner *lexer.Scanner) scrub.HeaderDetection {
	spans, err := scanner.Scan(src)
	if err != nil || len(spans) == 0 {
		return scrub.HeaderDetection{}
	}

	starts := lineStarts(src)
	lineAt := func(off int) int {
		return sort.Search(len(starts), func(i int) bool { return starts[i] > off }) - 1
	}

	kinds := make([]lineKind, len(starts))
	for _, s := range spans {
		if s.Kind.IsComment() {
			for l := lineAt(s.Start); l <= lineAt(s.End-1); l++ {
				if kinds[l] == lineBlank {
					kinds[l] = lineComment
				}
			}
			continue
		}
		for i, r := range s.Text(src) {
			if !unicode.IsSpace(r) {
				kinds[lineAt(s.Start+i)] = lineCode
			}
		}
	}
	for _, s := range spans {
		if !s.Kind.IsComment() {
			continue
		}
		first, last := lineAt(s.Start), lineAt(s.End-1)
		if kinds[first] == lineCode || kinds[last] == lineCode {
			for l := first; l <= last; l++ {
				kinds[l] = lineCode
			}
		}
	}

	n, blanks := 0, 0
	for l := 0; l < len(kinds) && l < scrub.MaxHeaderLines; l++ {
		if kinds[l] == lineCode {
			break
		}
		if kinds[l] == lineBlank {
			blanks++
			if n > 0 && blanks > maxBlankRun {
				break
			}
			continue
		}
		blanks = 0
		n = l + 1
	}

	for n > 0 && insideComment(spans, boundary(src, starts, n)) {
		n--
	}
	if n == 0 {
		return scrub.HeaderDetection{}
	}

	return scrub.HeaderDetection{Lines: n, Preview: preview(src, starts, n)}
}

// lineStarts returns the byte offset of every physical line in src.
func lineStarts(src string) []int {
	if src == "" {
		return nil
	}
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' && i+1 < len(src) {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func boundary(src string, starts []int, n int) int {
	if n < len(starts) {
		return starts[n]
	}
	return len(src)
}

func insideComment(spans []scrub.Span, off int) bool {
	for _, s := range spans {
		if s.Kind.IsComment() && s.Start < off && off < s.End {
			return true
		}
	}
	return false
}

func preview(src string, starts []int, n int) string {
	shown := n
	if shown > scrub.MaxHeaderPreviewLines {
		shown = scrub.MaxHeaderPreviewLines
	}
	text := strings.TrimRight(src[:boundary(src, starts, shown)], "\r\n")
	if shown < n {
		text += fmt.Sprintf("\n... (%d more lines)", n-shown)
	}
	return text
}
