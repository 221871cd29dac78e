package rizz

import (
	"fmt"
	"iter"
	"unicode/utf8"
)

// DefaultFractionDigits is the number of fractional digits decimals are
// rounded to unless configured otherwise.
const DefaultFractionDigits = 5

// Scanner turns source text into tokens by driving the transition table one
// character at a time. A Scanner is single-use: once drained it yields
// nothing more.
type Scanner struct {
	src    string
	table  *Table
	digits int

	pos  int
	line int

	diags *Diagnostics
}

// ScannerOption customizes a Scanner.
type ScannerOption func(*Scanner)

// WithFractionDigits sets how many fractional digits decimal tokens keep.
// Values below 1 are ignored.
func WithFractionDigits(n int) ScannerOption {
	return func(s *Scanner) {
		if n > 0 {
			s.digits = n
		}
	}
}

// WithTable replaces the transition table. A nil table is ignored.
func WithTable(t *Table) ScannerOption {
	return func(s *Scanner) {
		if t != nil {
			s.table = t
		}
	}
}

// WithDiagnostics makes the scanner append to an existing sink.
func WithDiagnostics(d *Diagnostics) ScannerOption {
	return func(s *Scanner) {
		if d != nil {
			s.diags = d
		}
	}
}

// NewScanner returns a scanner positioned at the start of src.
func NewScanner(src string, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		src:    src,
		table:  DefaultTable(),
		digits: DefaultFractionDigits,
		line:   1,
		diags:  &Diagnostics{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Diagnostics returns the messages recorded so far.
func (s *Scanner) Diagnostics() *Diagnostics {
	return s.diags
}

// Offset is the byte offset of the next unread character.
func (s *Scanner) Offset() int {
	return s.pos
}

// Line is the current line number, starting at 1.
func (s *Scanner) Line() int {
	return s.line
}

// Next returns the next token, or false once the input is exhausted.
func (s *Scanner) Next() (Token, bool) {
	for s.pos < len(s.src) {
		if tok, ok := s.scan(); ok {
			return tok, true
		}
	}
	return Token{}, false
}

// All yields the remaining tokens lazily.
func (s *Scanner) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := s.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Tokens drains the scanner into a slice.
func (s *Scanner) Tokens() []Token {
	var out []Token
	for tok := range s.All() {
		out = append(out, tok)
	}
	return out
}

// scan consumes one unit: a token, or a comment that produces none.
func (s *Scanner) scan() (Token, bool) {
	state := StateStart
	start := s.pos
	startLine := s.line

	for s.pos < len(s.src) {
		r, w := utf8.DecodeRuneInString(s.src[s.pos:])
		cat := CategoryOf(r)

		switch state {
		case StateLineComment:
			s.consume(r, w)
			if r == '\n' {
				return Token{}, false
			}
			continue
		case StateBlockComment, StateBlockCommentStar:
			s.consume(r, w)
			if next := s.table.Next(state, cat); next != Reject {
				state = next
			}
			if state == StateStart {
				return Token{}, false
			}
			continue
		case StateStringDQ, StateStringSQ:
			if r == closingQuote(state) {
				text := s.src[start+1 : s.pos]
				s.consume(r, w)
				return Token{Kind: KindString, Text: text, Line: startLine}, true
			}
			s.consume(r, w)
			continue
		}

		out := step(s.table, state, cat)
		switch out.act {
		case actSkip:
			s.consume(r, w)
			start = s.pos
			startLine = s.line
		case actAdvance:
			s.consume(r, w)
			state = out.next
		case actEmitOperator:
			s.consume(r, w)
			return Token{Kind: KindOperator, Text: string(r), Line: startLine}, true
		case actEmitReprocess:
			return s.finalize(state, s.src[start:s.pos], startLine), true
		case actUnexpected:
			s.consume(r, w)
			s.diags.Add(DiagUnexpectedChar, startLine, fmt.Sprintf("unexpected character %q", r))
			return Token{Kind: KindError, Text: string(r), Line: startLine}, true
		}
	}

	return s.finalizeAtEOF(state, start, startLine)
}

func (s *Scanner) consume(r rune, width int) {
	s.pos += width
	if r == '\n' {
		s.line++
	}
}

func closingQuote(state State) rune {
	if state == StateStringSQ {
		return '\''
	}
	return '"'
}
