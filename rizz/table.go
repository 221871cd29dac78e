package rizz

import (
	"fmt"
	"io"
	"strings"
)

// State is a scanner machine state.
type State int

// Reject marks a table entry with no valid transition.
const Reject State = -1

const (
	StateStart State = iota
	StateIdent
	StateInt
	StateDotSeen
	StateFrac
	StateSlashPending
	StateLineComment
	StateBlockComment
	StateBlockCommentStar
	StateStringDQ
	StateStringSQ
	StateOperator
)

const numStates = int(StateOperator) + 1

var stateNames = [numStates]string{
	StateStart:            "START",
	StateIdent:            "IDENT",
	StateInt:              "INT",
	StateDotSeen:          "DOT_SEEN",
	StateFrac:             "FRAC",
	StateSlashPending:     "SLASH_PENDING",
	StateLineComment:      "LINE_COMMENT",
	StateBlockComment:     "BLOCK_COMMENT",
	StateBlockCommentStar: "BLOCK_COMMENT_STAR",
	StateStringDQ:         "STRING_DQ",
	StateStringSQ:         "STRING_SQ",
	StateOperator:         "OPERATOR",
}

func (s State) String() string {
	if s == Reject {
		return "ERR"
	}
	if s < 0 || int(s) >= numStates {
		return "INVALID"
	}
	return stateNames[s]
}

// Table is the unified transition table. It is filled once by NewTable and
// never written afterwards, so a single instance may be shared freely.
type Table struct {
	next [numStates][numCategories]State
}

var defaultTable = NewTable()

// DefaultTable returns the shared transition table.
func DefaultTable() *Table {
	return defaultTable
}

// NewTable builds the transition table. Every entry not set explicitly is
// Reject.
func NewTable() *Table {
	t := &Table{}
	for s := range t.next {
		for c := range t.next[s] {
			t.next[s][c] = Reject
		}
	}

	t.set(StateStart, CatLetter, StateIdent)
	t.set(StateStart, CatDigit, StateInt)
	t.set(StateStart, CatSlash, StateSlashPending)
	t.set(StateStart, CatDoubleQuote, StateStringDQ)
	t.set(StateStart, CatSingleQuote, StateStringSQ)
	t.set(StateStart, CatWhitespace, StateStart)
	for _, c := range []Category{
		CatStar, CatPlus, CatMinus, CatPercent, CatCaret,
		CatEquals, CatLess, CatGreater, CatLParen, CatRParen,
	} {
		t.set(StateStart, c, StateOperator)
	}

	t.set(StateIdent, CatLetter, StateIdent)

	t.set(StateInt, CatDigit, StateInt)
	t.set(StateInt, CatDot, StateDotSeen)

	t.set(StateDotSeen, CatDigit, StateFrac)

	t.set(StateFrac, CatDigit, StateFrac)

	// Anything but a second slash or a star means the slash was division.
	t.fill(StateSlashPending, StateOperator)
	t.set(StateSlashPending, CatSlash, StateLineComment)
	t.set(StateSlashPending, CatStar, StateBlockComment)

	// The newline that ends a line comment is handled by the scanner.
	t.fill(StateLineComment, StateLineComment)

	t.fill(StateBlockComment, StateBlockComment)
	t.set(StateBlockComment, CatStar, StateBlockCommentStar)

	t.fill(StateBlockCommentStar, StateBlockComment)
	t.set(StateBlockCommentStar, CatSlash, StateStart)
	t.set(StateBlockCommentStar, CatStar, StateBlockCommentStar)

	// The closing quote is handled by the scanner.
	t.fill(StateStringDQ, StateStringDQ)
	t.fill(StateStringSQ, StateStringSQ)

	return t
}

func (t *Table) set(s State, c Category, next State) {
	t.next[s][c] = next
}

func (t *Table) fill(s State, next State) {
	for c := range t.next[s] {
		t.next[s][c] = next
	}
}

// Next returns the successor of s on input category c, or Reject.
func (t *Table) Next(s State, c Category) State {
	if s < 0 || int(s) >= numStates || c < 0 || int(c) >= numCategories {
		return Reject
	}
	return t.next[s][c]
}

// States lists every machine state in table row order.
func (t *Table) States() []State {
	out := make([]State, numStates)
	for i := range out {
		out[i] = State(i)
	}
	return out
}

// Categories lists every input category in table column order.
func (t *Table) Categories() []Category {
	out := make([]Category, numCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// RowLabel renders a state as "<id>(<name>)".
func RowLabel(s State) string {
	return fmt.Sprintf("%d(%s)", int(s), s)
}

// Cell renders a table entry the way the text dump prints it.
func Cell(next State) string {
	if next == Reject {
		return "ERR"
	}
	return fmt.Sprintf("%d", int(next))
}

// WriteTo prints the whole table, one row per state and one column per
// category.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	labelWidth := 0
	for _, s := range t.States() {
		labelWidth = max(labelWidth, len(RowLabel(s)))
	}
	labelWidth += 2

	var b strings.Builder
	b.WriteString("DFA Transition Table (rows=states, cols=categories):\n")
	fmt.Fprintf(&b, "%-*s", labelWidth, "")
	for _, c := range t.Categories() {
		fmt.Fprintf(&b, "%-7s", c)
	}
	b.WriteString("\n")
	for _, s := range t.States() {
		fmt.Fprintf(&b, "%-*s", labelWidth, RowLabel(s))
		for _, c := range t.Categories() {
			fmt.Fprintf(&b, "%-7s", Cell(t.Next(s, c)))
		}
		b.WriteString("\n")
	}

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func (t *Table) String() string {
	var b strings.Builder
	_, _ = t.WriteTo(&b)
	return b.String()
}
