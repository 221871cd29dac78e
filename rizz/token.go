package rizz

import "fmt"

// TokenKind identifies the lexical category of a token.
type TokenKind string

const (
	KindIdentifier TokenKind = "IDENTIFIER"
	KindKeyword    TokenKind = "KEYWORD"
	KindInteger    TokenKind = "INTEGER"
	KindDecimal    TokenKind = "DECIMAL"
	KindBoolean    TokenKind = "BOOLEAN"
	KindCharacter  TokenKind = "CHARACTER"
	KindOperator   TokenKind = "OPERATOR"
	KindComment    TokenKind = "COMMENT"
	KindString     TokenKind = "STRING"
	KindArithmetic TokenKind = "ARITHMETIC"
	KindError      TokenKind = "ERROR"
)

// TokenKinds lists every kind in declaration order.
var TokenKinds = []TokenKind{
	KindIdentifier,
	KindKeyword,
	KindInteger,
	KindDecimal,
	KindBoolean,
	KindCharacter,
	KindOperator,
	KindComment,
	KindString,
	KindArithmetic,
	KindError,
}

// IsOperand reports whether tokens of this kind may take part in an
// arithmetic merge.
func (k TokenKind) IsOperand() bool {
	return k == KindIdentifier || k == KindInteger || k == KindDecimal
}

// Token is a classified lexeme. Line is the line on which the lexeme began.
type Token struct {
	Kind TokenKind `json:"kind"`
	Text string    `json:"text"`
	Line int       `json:"line"`
}

func (t Token) String() string {
	return fmt.Sprintf("Token [type=%s, lexeme=%q, line=%d]", t.Kind, t.Text, t.Line)
}
