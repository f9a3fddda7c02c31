// Package assembler turns a span sequence back into text with the comment
// spans removed.
package assembler

import (
	"strings"

	"github.com/vvka-141/scrub/pkg/scrub"
)

// Assembly is the scrubbed text plus what was removed to produce it.
type Assembly struct {
	Text string

	CommentBytes  int
	CommentSpans  int
	LineComments  int
	BlockComments int

	Removals []scrub.Removal
}

// Assemble copies header verbatim, then the code spans of body. Comment spans
// are dropped except for any newlines inside block comments, which are kept
// so every line keeps its line number. A line that loses a comment and is
// left with only whitespace is emptied; its newline stays.
//
// CommentBytes and Removal.Bytes count only the bytes that are dropped, so
// line terminators kept from block comments are excluded.
//
// firstLine is the absolute line number of the first line of body.
func Assemble(header, body string, spans []scrub.Span, firstLine int) Assembly {
	a := Assembly{}
	w := lineWriter{}
	w.out.Grow(len(header) + len(body))
	w.out.WriteString(header)

	line := firstLine
	for _, span := range spans {
		text := span.Text(body)

		if !span.Kind.IsComment() {
			w.writeCode(text)
			line += strings.Count(text, "\n")
			continue
		}

		newlines := strings.Count(text, "\n")
		dropped := len(text) - newlines - strings.Count(text, "\r\n")
		a.CommentBytes += dropped
		a.CommentSpans++
		if span.Kind == scrub.KindLineComment {
			a.LineComments++
		} else {
			a.BlockComments++
		}
		a.Removals = append(a.Removals, scrub.Removal{
			Kind:      span.Kind,
			StartLine: line,
			EndLine:   line + newlines,
			Bytes:     dropped,
		})

		w.dropComment(text)
		line += newlines
	}

	w.flush(false)
	a.Text = w.out.String()
	return a
}

// lineWriter buffers the current output line so it can be emptied when
// comment removal leaves only whitespace behind.
type lineWriter struct {
	out        strings.Builder
	line       strings.Builder
	hadComment bool
}

func (w *lineWriter) writeCode(text string) {
	for {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			w.line.WriteString(text)
			return
		}
		w.line.WriteString(text[:i])
		w.flush(true)
		text = text[i+1:]
	}
}

// dropComment discards a comment but keeps its line terminators.
func (w *lineWriter) dropComment(text string) {
	w.hadComment = true
	for {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			return
		}
		if i > 0 && text[i-1] == '\r' {
			w.line.WriteByte('\r')
		}
		w.flush(true)
		w.hadComment = true
		text = text[i+1:]
	}
}

func (w *lineWriter) flush(newline bool) {
	text := w.line.String()
	if w.hadComment && strings.TrimSpace(text) == "" {
		if newline && strings.HasSuffix(text, "\r") {
			text = "\r"
		} else {
			text = ""
		}
	}
	w.out.WriteString(text)
	if newline {
		w.out.WriteByte('\n')
	}
	w.line.Reset()
	w.hadComment = false
}
