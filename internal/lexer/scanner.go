package lexer

import (
	"fmt"

	"github.com/vvka-141/scrub/pkg/scrub"
)

// ScanError reports input that ended inside a block comment or literal.
// Pos is where the unterminated construct began.
type ScanError struct {
	Err error
	Pos scrub.Position
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%v starting at %s", e.Err, e.Pos)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// Shift moves the position by a number of whole lines and bytes, for
// callers that scanned a region starting after a header.
func (e *ScanError) Shift(lines, bytes int) {
	e.Pos.Line += lines
	e.Pos.Offset += bytes
}

// Scanner produces span sequences. It holds configuration only and is safe
// for concurrent use; every Scan call runs with its own State.
type Scanner struct {
	dialect Dialect
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithDialect sets the lexical conventions the scanner recognizes.
func WithDialect(d Dialect) Option {
	return func(s *Scanner) {
		s.dialect = d
	}
}

// New creates a Scanner using DefaultDialect unless overridden.
func New(opts ...Option) *Scanner {
	s := &Scanner{dialect: DefaultDialect()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dialect returns the scanner's dialect.
func (s *Scanner) Dialect() Dialect {
	return s.dialect
}

// Scan splits src into contiguous spans. Adjacent spans of the same kind are
// only produced when a new comment opens directly after another one.
func (s *Scanner) Scan(src string) ([]scrub.Span, error) {
	var spans []scrub.Span

	st := Start
	cur := scrub.KindCode
	start := 0
	began := 0

	for i := 0; i < len(src); {
		tr := s.dialect.Step(st, src[i:])

		if tr.Opens || tr.Owner != cur {
			if i > start {
				spans = append(spans, scrub.Span{Start: start, End: i, Kind: cur})
			}
			start, cur = i, tr.Owner
		}
		if st.Kind == Normal && tr.Next.Kind != Normal {
			began = i
		}

		st = tr.Next
		i += tr.Width
	}

	if !st.Terminal() {
		return nil, unterminated(src, st, began)
	}

	if len(src) > start {
		spans = append(spans, scrub.Span{Start: start, End: len(src), Kind: cur})
	}
	return spans, nil
}

func unterminated(src string, st State, began int) *ScanError {
	err := scrub.ErrUnterminatedStringLiteral
	if st.Kind == InBlockComment {
		err = scrub.ErrUnterminatedBlockComment
	}
	return &ScanError{Err: err, Pos: Locate(src, began)}
}
