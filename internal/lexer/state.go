package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vvka-141/scrub/pkg/scrub"
)

// StateKind names the active scanner state.
type StateKind int

const (
	Normal StateKind = iota
	InLineComment
	InBlockComment
	InString
	InChar
	Escaped
	InRawString
)

func (k StateKind) String() string {
	switch k {
	case Normal:
		return "Normal"
	case InLineComment:
		return "InLineComment"
	case InBlockComment:
		return "InBlockComment"
	case InString:
		return "InString"
	case InChar:
		return "InChar"
	case Escaped:
		return "Escaped"
	case InRawString:
		return "InRawString"
	default:
		return "StateKind(?)"
	}
}

// State is the scanner state. Only the fields relevant to Kind are set:
// Delim for InString, InChar and Escaped, Return for Escaped (the literal
// state to resume after the escaped rune), Hashes for InRawString.
type State struct {
	Kind   StateKind
	Delim  rune
	Return StateKind
	Hashes int
}

// Start is the state at the beginning of the scrubbable region.
var Start = State{Kind: Normal}

// Terminal reports whether input may legally end in this state.
func (s State) Terminal() bool {
	return s.Kind == Normal || s.Kind == InLineComment
}

// Transition is the result of one Step: the bytes consumed, the span kind
// that owns them, and the state to continue in.
type Transition struct {
	Next  State
	Width int
	Owner scrub.Kind

	// Opens forces a span boundary before the consumed bytes even when
	// Owner matches the current span, so /* a *//* b */ stays two spans.
	Opens bool
}

// Dialect selects optional lexical conventions on top of the C-style core.
type Dialect struct {
	// RawStrings recognizes r"..." / r#"..."# / br"..." literals.
	RawStrings bool

	// Lifetimes treats 'ident not closed by a quote as code ('a, 'static).
	Lifetimes bool
}

// DefaultDialect returns the dialect used when none is configured.
func DefaultDialect() Dialect {
	return Dialect{RawStrings: true}
}

// Step consumes the next token of rest in state st. rest must be non-empty.
// Step is pure: the result depends only on the dialect, st and rest.
func (d Dialect) Step(st State, rest string) Transition {
	r, w := utf8.DecodeRuneInString(rest)

	switch st.Kind {
	case Normal:
		return d.stepNormal(rest, r, w)

	case InLineComment:
		if r == '\n' || (r == '\r' && strings.HasPrefix(rest[w:], "\n")) {
			return code(Start, w)
		}
		return Transition{Next: st, Width: w, Owner: scrub.KindLineComment}

	case InBlockComment:
		if strings.HasPrefix(rest, "*/") {
			return Transition{Next: Start, Width: 2, Owner: scrub.KindBlockComment}
		}
		return Transition{Next: st, Width: w, Owner: scrub.KindBlockComment}

	case InString, InChar:
		switch r {
		case '\\':
			return code(State{Kind: Escaped, Return: st.Kind, Delim: st.Delim}, w)
		case st.Delim:
			return code(Start, w)
		}
		return code(st, w)

	case Escaped:
		return code(State{Kind: st.Return, Delim: st.Delim}, w)

	case InRawString:
		if r == '"' && hasHashes(rest[w:], st.Hashes) {
			return code(Start, w+st.Hashes)
		}
		return code(st, w)
	}

	return code(st, w)
}

func (d Dialect) stepNormal(rest string, r rune, w int) Transition {
	switch {
	case strings.HasPrefix(rest, "//"):
		return Transition{Next: State{Kind: InLineComment}, Width: 2, Owner: scrub.KindLineComment, Opens: true}
	case strings.HasPrefix(rest, "/*"):
		return Transition{Next: State{Kind: InBlockComment}, Width: 2, Owner: scrub.KindBlockComment, Opens: true}
	case r == '"':
		return code(State{Kind: InString, Delim: '"'}, w)
	case r == '\'':
		if d.Lifetimes && isLifetime(rest[w:]) {
			return code(Start, w)
		}
		return code(State{Kind: InChar, Delim: '\''}, w)
	case d.RawStrings && isIdentStart(r):
		// Identifiers are consumed whole so a raw string prefix is only
		// recognized at a word boundary.
		if hashes, width, ok := rawStringPrefix(rest); ok {
			return code(State{Kind: InRawString, Hashes: hashes}, width)
		}
		return code(Start, identLen(rest))
	}
	return code(Start, w)
}

func code(next State, width int) Transition {
	return Transition{Next: next, Width: width, Owner: scrub.KindCode}
}

// rawStringPrefix matches r"  r#"  br##"  at the start of s and returns the
// hash count and the prefix width including the opening quote.
func rawStringPrefix(s string) (hashes, width int, ok bool) {
	i := 0
	if strings.HasPrefix(s, "br") {
		i = 2
	} else if strings.HasPrefix(s, "r") {
		i = 1
	} else {
		return 0, 0, false
	}
	for i < len(s) && s[i] == '#' {
		hashes++
		i++
	}
	if i < len(s) && s[i] == '"' {
		return hashes, i + 1, true
	}
	return 0, 0, false
}

func hasHashes(s string, n int) bool {
	if len(s) < n {
		return false
	}
	for i := 0; i < n; i++ {
		if s[i] != '#' {
			return false
		}
	}
	return true
}

// isLifetime reports whether the text after a quote reads as 'ident rather
// than a char literal: an identifier start not immediately closed by '.
func isLifetime(afterQuote string) bool {
	r, w := utf8.DecodeRuneInString(afterQuote)
	if w == 0 || !isIdentStart(r) {
		return false
	}
	next, _ := utf8.DecodeRuneInString(afterQuote[w:])
	return next != '\''
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func identLen(s string) int {
	n := 0
	for n < len(s) {
		r, w := utf8.DecodeRuneInString(s[n:])
		if !isIdentPart(r) {
			break
		}
		n += w
	}
	return n
}
