package rizz

import (
	"strings"
	"testing"
)

func TestWriteReportSections(t *testing.T) {
	analysis := MustNewLexer(Config{}).Analyze("int x\nx = 1 $")

	var b strings.Builder
	if err := WriteReport(&b, analysis, ReportOptions{Symbols: true, Table: true}); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}
	out := b.String()

	for _, want := range []string{
		"========== Lexical Analysis ==========\nNumber of tokens: 6\n",
		`Token [type=KEYWORD, lexeme="int", line=1]`,
		`Token [type=ERROR, lexeme="$", line=2]`,
		"========== Symbol Table ==========\nIdentifier\tType\nx\t\tIdentifier\n",
		"========== Unified DFA Transition Table ==========\nDFA Transition Table",
		"========== Errors ==========\nunexpected character '$' at line 2\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestWriteReportOmitsEmptySections(t *testing.T) {
	analysis := MustNewLexer(Config{}).Analyze("a + b")

	var b strings.Builder
	if err := WriteReport(&b, analysis, ReportOptions{}); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}
	out := b.String()
	if strings.Contains(out, "Errors") || strings.Contains(out, "Symbol Table") || strings.Contains(out, "DFA") {
		t.Fatalf("unexpected sections:\n%s", out)
	}
	if !strings.Contains(out, `Token [type=ARITHMETIC, lexeme="a + b", line=1]`) {
		t.Fatalf("missing arithmetic token:\n%s", out)
	}
}
