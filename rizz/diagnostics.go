package rizz

import (
	"fmt"
	"strings"
)

// DiagnosticKind classifies a lexical problem.
type DiagnosticKind int

const (
	DiagUnexpectedChar DiagnosticKind = iota + 1
	DiagInvalidNumeral
	DiagUnterminatedString
	DiagUnclosedComment
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagUnexpectedChar:
		return "unexpected character"
	case DiagInvalidNumeral:
		return "invalid numeral"
	case DiagUnterminatedString:
		return "unterminated string"
	case DiagUnclosedComment:
		return "unclosed comment"
	default:
		return "unknown"
	}
}

// Diagnostic is one lexical problem.
type Diagnostic struct {
	Kind    DiagnosticKind `json:"-"`
	Line    int            `json:"line"`
	Message string         `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s at line %d", d.Message, d.Line)
}

// Diagnostics is an append-only list of problems in scan order. Repeated
// messages are kept.
type Diagnostics struct {
	items []Diagnostic
}

// Add records a diagnostic.
func (d *Diagnostics) Add(kind DiagnosticKind, line int, message string) {
	d.items = append(d.items, Diagnostic{Kind: kind, Line: line, Message: message})
}

func (d *Diagnostics) Len() int {
	if d == nil {
		return 0
	}
	return len(d.items)
}

// All returns a copy of the recorded diagnostics.
func (d *Diagnostics) All() []Diagnostic {
	if d == nil {
		return nil
	}
	return append([]Diagnostic(nil), d.items...)
}

// Messages renders every diagnostic as "<description> at line <n>".
func (d *Diagnostics) Messages() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.items))
	for i, item := range d.items {
		out[i] = item.String()
	}
	return out
}

// Err returns nil when nothing was recorded and a *LexError otherwise.
func (d *Diagnostics) Err() error {
	if d.Len() == 0 {
		return nil
	}
	return &LexError{Diagnostics: d.All()}
}

// LexError reports every diagnostic of a scan.
type LexError struct {
	Diagnostics []Diagnostic
}

func (e *LexError) Error() string {
	lines := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}
