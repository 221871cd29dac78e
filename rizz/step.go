package rizz

type action int

const (
	// actAdvance consumes the character and moves to outcome.next.
	actAdvance action = iota
	// actSkip consumes whitespace while idle.
	actSkip
	// actEmitOperator consumes the character as a one-character operator.
	actEmitOperator
	// actEmitReprocess finalizes the pending lexeme without consuming the
	// character, which is examined again from StateStart.
	actEmitReprocess
	// actUnexpected consumes the character and reports it.
	actUnexpected
)

type outcome struct {
	act  action
	next State
}

// step decides what the scanner does with a character of category c while in
// state s. It covers the accumulating states only; comments and strings are
// driven by the scanner's sub-scanners.
func step(t *Table, s State, c Category) outcome {
	next := t.Next(s, c)
	switch {
	case next == Reject && s == StateStart:
		return outcome{act: actUnexpected}
	case next == Reject:
		return outcome{act: actEmitReprocess}
	case s == StateStart && next == StateStart:
		return outcome{act: actSkip, next: StateStart}
	case s == StateSlashPending && next == StateOperator:
		// The pending slash is the operator, not the current character.
		return outcome{act: actEmitReprocess}
	case next == StateOperator:
		return outcome{act: actEmitOperator, next: StateOperator}
	default:
		return outcome{act: actAdvance, next: next}
	}
}
