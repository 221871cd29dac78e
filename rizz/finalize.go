package rizz

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var booleanLiterals = map[string]struct{}{
	"true":  {},
	"false": {},
}

var reservedWords = map[string]struct{}{
	"int":     {},
	"bool":    {},
	"float":   {},
	"char":    {},
	"in":      {},
	"out":     {},
	"input":   {},
	"output":  {},
	"if":      {},
	"else":    {},
	"while":   {},
	"boolean": {},
	"integer": {},
	"decimal": {},
}

// Keywords returns the reserved words in sorted order.
func Keywords() []string {
	out := make([]string, 0, len(reservedWords))
	for word := range reservedWords {
		out = append(out, word)
	}
	slices.Sort(out)
	return out
}

// BooleanLiterals returns the boolean literal spellings in sorted order.
func BooleanLiterals() []string {
	return []string{"false", "true"}
}

// ClassifyWord maps a run of letters to Boolean, Keyword or Identifier.
func ClassifyWord(word string) TokenKind {
	if _, ok := booleanLiterals[word]; ok {
		return KindBoolean
	}
	if _, ok := reservedWords[word]; ok {
		return KindKeyword
	}
	return KindIdentifier
}

// finalize turns the lexeme accumulated in state into a token.
func (s *Scanner) finalize(state State, text string, line int) Token {
	switch state {
	case StateIdent:
		return Token{Kind: ClassifyWord(text), Text: text, Line: line}
	case StateInt:
		return Token{Kind: KindInteger, Text: text, Line: line}
	case StateFrac:
		rendered, err := FormatDecimal(text, s.digits)
		if err != nil {
			s.diags.Add(DiagInvalidNumeral, line, fmt.Sprintf("invalid decimal '%s'", text))
			return Token{Kind: KindError, Text: text, Line: line}
		}
		return Token{Kind: KindDecimal, Text: rendered, Line: line}
	case StateDotSeen:
		s.diags.Add(DiagInvalidNumeral, line, fmt.Sprintf("invalid token '%s'", text))
		return Token{Kind: KindError, Text: text, Line: line}
	case StateSlashPending:
		return Token{Kind: KindOperator, Text: text, Line: line}
	default:
		s.diags.Add(DiagUnexpectedChar, line, fmt.Sprintf("invalid token '%s'", text))
		return Token{Kind: KindError, Text: text, Line: line}
	}
}

// finalizeAtEOF handles input that ends while state is still open.
func (s *Scanner) finalizeAtEOF(state State, start, line int) (Token, bool) {
	switch state {
	case StateStart, StateLineComment:
		return Token{}, false
	case StateStringDQ, StateStringSQ:
		s.diags.Add(DiagUnterminatedString, line, "unterminated string literal")
		return Token{Kind: KindError, Text: s.src[start+1:], Line: line}, true
	case StateBlockComment, StateBlockCommentStar:
		s.diags.Add(DiagUnclosedComment, s.line, "unclosed multi-line comment")
		return Token{Kind: KindError, Text: s.src[start:], Line: s.line}, true
	default:
		return s.finalize(state, s.src[start:s.pos], line), true
	}
}

// FormatDecimal parses a numeral and renders it with at most digits
// fractional digits, trailing zeros removed. Rounding is to nearest with
// ties to even on the exact binary value.
func FormatDecimal(text string, digits int) (string, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return "", fmt.Errorf("parse decimal %q: %w", text, err)
	}
	out := strconv.FormatFloat(v, 'f', digits, 64)
	if strings.Contains(out, ".") {
		out = strings.TrimRight(out, "0")
		out = strings.TrimSuffix(out, ".")
	}
	return out, nil
}
