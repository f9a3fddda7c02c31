package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/vvka-141/scrub/pkg/scrub"
)

// Locate converts a byte offset in src to a line/column position.
// Offsets past the end are clamped to len(src).
func Locate(src string, offset int) scrub.Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(src) {
		offset = len(src)
	}

	before := src[:offset]
	line := strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1

	return scrub.Position{
		Offset: offset,
		Line:   line,
		Column: utf8.RuneCountInString(before[lineStart:]) + 1,
	}
}
