package rizz

import "fmt"

const maxFractionDigits = 15

// Config controls how source text is tokenized.
type Config struct {
	// FractionDigits bounds the fractional digits kept on decimal tokens.
	// Zero selects DefaultFractionDigits.
	FractionDigits int
	// DisableArithmetic skips the arithmetic reclassification pass.
	DisableArithmetic bool
}

// Lexer runs the full front end: scanning, arithmetic reclassification and
// symbol collection.
type Lexer struct {
	config Config
	table  *Table
}

// NewLexer validates cfg and fills in defaults.
func NewLexer(cfg Config) (*Lexer, error) {
	if cfg.FractionDigits == 0 {
		cfg.FractionDigits = DefaultFractionDigits
	}
	if cfg.FractionDigits < 0 || cfg.FractionDigits > maxFractionDigits {
		return nil, fmt.Errorf("fraction digits must be between 1 and %d, got %d", maxFractionDigits, cfg.FractionDigits)
	}
	return &Lexer{config: cfg, table: DefaultTable()}, nil
}

// MustNewLexer is NewLexer that panics on an invalid config.
func MustNewLexer(cfg Config) *Lexer {
	lx, err := NewLexer(cfg)
	if err != nil {
		panic(err)
	}
	return lx
}

func (lx *Lexer) Config() Config {
	return lx.config
}

// Table returns the transition table the lexer scans with.
func (lx *Lexer) Table() *Table {
	return lx.table
}

// Analysis is the result of lexing one source text.
type Analysis struct {
	Source string
	// Raw is the scanner output before arithmetic reclassification.
	Raw         []Token
	Tokens      []Token
	Symbols     *SymbolTable
	Diagnostics *Diagnostics
}

// Analyze lexes src. Lexical problems never abort the run; they are reported
// in the returned Diagnostics.
func (lx *Lexer) Analyze(src string) *Analysis {
	scanner := NewScanner(src,
		WithTable(lx.table),
		WithFractionDigits(lx.config.FractionDigits),
	)
	raw := scanner.Tokens()

	tokens := raw
	if !lx.config.DisableArithmetic {
		tokens = ReclassifyArithmetic(raw)
	}

	return &Analysis{
		Source:      src,
		Raw:         raw,
		Tokens:      tokens,
		Symbols:     BuildSymbolTable(tokens),
		Diagnostics: scanner.Diagnostics(),
	}
}

// Err returns the lexical errors as a *LexError, or nil.
func (a *Analysis) Err() error {
	return a.Diagnostics.Err()
}

// Incomplete reports whether the source stops inside a string literal or a
// block comment, i.e. more input could still make it valid.
func (a *Analysis) Incomplete() bool {
	all := a.Diagnostics.All()
	if len(all) == 0 {
		return false
	}
	last := all[len(all)-1]
	return last.Kind == DiagUnterminatedString || last.Kind == DiagUnclosedComment
}
