// Package header handles the leading lines of a file that are preserved
// verbatim: splitting them off before scanning and detecting them
// automatically.
package header

import (
	"fmt"
	"strings"

	"github.com/vvka-141/scrub/pkg/scrub"
)

// CountLines returns the number of physical lines in src. A final line
// without a trailing newline counts; empty input has no lines.
func CountLines(src string) int {
	if src == "" {
		return 0
	}
	n := strings.Count(src, "\n")
	if !strings.HasSuffix(src, "\n") {
		n++
	}
	return n
}

// Split returns the first n lines of src (terminators included) and the rest.
func Split(src string, n int) (head, body string, err error) {
	total := CountLines(src)
	if n < 0 || n > total {
		return "", "", fmt.Errorf("%w: %d (input has %d lines)", scrub.ErrInvalidHeaderLineCount, n, total)
	}

	off := 0
	for i := 0; i < n; i++ {
		j := strings.IndexByte(src[off:], '\n')
		if j < 0 {
			off = len(src)
			break
		}
		off += j + 1
	}
	return src[:off], src[off:], nil
}
