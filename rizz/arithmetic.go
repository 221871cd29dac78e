package rizz

// IsArithmeticOperator reports whether tok is one of + - * / % ^.
func IsArithmeticOperator(tok Token) bool {
	if tok.Kind != KindOperator {
		return false
	}
	switch tok.Text {
	case "+", "-", "*", "/", "%", "^":
		return true
	}
	return false
}

// ReclassifyArithmetic merges each <operand> <operator> <operand> triple into
// a single ARITHMETIC token in one left-to-right pass. Merged tokens are not
// revisited, so "a + b + c" yields ARITHMETIC("a + b") followed by "+" and
// "c". The input slice is left untouched.
func ReclassifyArithmetic(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for i := 0; i < len(tokens); {
		if i+2 < len(tokens) &&
			tokens[i].Kind.IsOperand() &&
			IsArithmeticOperator(tokens[i+1]) &&
			tokens[i+2].Kind.IsOperand() {
			first := tokens[i]
			out = append(out, Token{
				Kind: KindArithmetic,
				Text: first.Text + " " + tokens[i+1].Text + " " + tokens[i+2].Text,
				Line: first.Line,
			})
			i += 3
			continue
		}
		out = append(out, tokens[i])
		i++
	}
	return out
}
