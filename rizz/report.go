package rizz

import (
	"fmt"
	"io"
	"strings"
)

// ReportOptions selects the sections WriteReport prints.
type ReportOptions struct {
	Symbols bool
	Table   bool
}

// WriteReport prints the token stream followed by the selected sections and,
// when present, the diagnostics.
func WriteReport(w io.Writer, a *Analysis, opts ReportOptions) error {
	var b strings.Builder

	b.WriteString("========== Lexical Analysis ==========\n")
	fmt.Fprintf(&b, "Number of tokens: %d\n", len(a.Tokens))
	for _, tok := range a.Tokens {
		b.WriteString(tok.String())
		b.WriteString("\n")
	}

	if opts.Symbols {
		b.WriteString("\n========== Symbol Table ==========\n")
		b.WriteString("Identifier\tType\n")
		for _, sym := range a.Symbols.Entries() {
			fmt.Fprintf(&b, "%s\t\t%s\n", sym.Name, sym.Category)
		}
	}

	if opts.Table {
		b.WriteString("\n========== Unified DFA Transition Table ==========\n")
		b.WriteString(DefaultTable().String())
	}

	if a.Diagnostics.Len() > 0 {
		b.WriteString("\n========== Errors ==========\n")
		for _, msg := range a.Diagnostics.Messages() {
			b.WriteString(msg)
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
