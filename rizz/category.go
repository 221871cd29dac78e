package rizz

import "unicode"

// Category is the equivalence class an input character maps to before the
// transition table is consulted.
type Category int

const (
	CatLetter Category = iota
	CatDigit
	CatDot
	CatSlash
	CatStar
	CatDoubleQuote
	CatSingleQuote
	CatPlus
	CatMinus
	CatPercent
	CatCaret
	CatEquals
	CatLess
	CatGreater
	CatLParen
	CatRParen
	CatWhitespace
	CatOther

	numCategories = int(CatOther) + 1
)

var categoryNames = [numCategories]string{
	CatLetter:      "LETTER",
	CatDigit:       "DIGIT",
	CatDot:         "DOT",
	CatSlash:       "/",
	CatStar:        "*",
	CatDoubleQuote: `"`,
	CatSingleQuote: "'",
	CatPlus:        "+",
	CatMinus:       "-",
	CatPercent:     "%",
	CatCaret:       "^",
	CatEquals:      "=",
	CatLess:        "<",
	CatGreater:     ">",
	CatLParen:      "(",
	CatRParen:      ")",
	CatWhitespace:  "WS",
	CatOther:       "OTHER",
}

func (c Category) String() string {
	if c < 0 || int(c) >= numCategories {
		return "INVALID"
	}
	return categoryNames[c]
}

// CategoryOf classifies a single character. Only a-z count as letters;
// uppercase letters and underscores fall into CatOther.
func CategoryOf(r rune) Category {
	switch {
	case r >= 'a' && r <= 'z':
		return CatLetter
	case r >= '0' && r <= '9':
		return CatDigit
	}
	switch r {
	case '.':
		return CatDot
	case '/':
		return CatSlash
	case '*':
		return CatStar
	case '"':
		return CatDoubleQuote
	case '\'':
		return CatSingleQuote
	case '+':
		return CatPlus
	case '-':
		return CatMinus
	case '%':
		return CatPercent
	case '^':
		return CatCaret
	case '=':
		return CatEquals
	case '<':
		return CatLess
	case '>':
		return CatGreater
	case '(':
		return CatLParen
	case ')':
		return CatRParen
	}
	if unicode.IsSpace(r) {
		return CatWhitespace
	}
	return CatOther
}
