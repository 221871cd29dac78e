package rizz

// IdentifierCategory is the label given to every identifier entry.
const IdentifierCategory = "Identifier"

// Symbol is one symbol table entry.
type Symbol struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// SymbolTable maps identifiers to a category label. The first insertion of a
// name wins; entries keep insertion order.
type SymbolTable struct {
	index   map[string]int
	entries []Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{index: make(map[string]int)}
}

// BuildSymbolTable records every IDENTIFIER token of tokens.
func BuildSymbolTable(tokens []Token) *SymbolTable {
	table := NewSymbolTable()
	table.AddTokens(tokens)
	return table
}

// Add inserts name unless it is already present. It reports whether the
// entry was new.
func (t *SymbolTable) Add(name, category string) bool {
	if _, ok := t.index[name]; ok {
		return false
	}
	t.index[name] = len(t.entries)
	t.entries = append(t.entries, Symbol{Name: name, Category: category})
	return true
}

// AddTokens records the IDENTIFIER tokens of tokens.
func (t *SymbolTable) AddTokens(tokens []Token) {
	for _, tok := range tokens {
		if tok.Kind == KindIdentifier {
			t.Add(tok.Text, IdentifierCategory)
		}
	}
}

func (t *SymbolTable) Lookup(name string) (string, bool) {
	i, ok := t.index[name]
	if !ok {
		return "", false
	}
	return t.entries[i].Category, true
}

func (t *SymbolTable) Len() int {
	return len(t.entries)
}

// Entries returns the symbols in insertion order.
func (t *SymbolTable) Entries() []Symbol {
	return append([]Symbol(nil), t.entries...)
}
