package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mgomes/rizzlang/rizz"
)

func TestUpdateQuitCommandReturnsQuit(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":quit")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if !rm.quitting {
		t.Fatalf("quitting flag not set")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after quit command")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}

func TestUpdateNonQuitCommandDoesNotReturnCmd(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":help")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if cmd != nil {
		t.Fatalf("expected no command for non-quit input")
	}
	if rm.quitting {
		t.Fatalf("quitting should remain false")
	}
	if !rm.showHelp {
		t.Fatalf("help toggle should be enabled")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after command")
	}
}

func TestEvaluateRecordsIdentifiers(t *testing.T) {
	m := newREPLModel()

	entry, complete := m.evaluate("int score = 42")
	if !complete {
		t.Fatalf("expected complete input")
	}
	if entry.isErr {
		t.Fatalf("unexpected diagnostics: %v", entry.diagnostics)
	}
	if len(entry.tokens) != 4 {
		t.Fatalf("expected 4 tokens, got %v", entry.tokens)
	}
	if _, ok := m.symbols.Lookup("score"); !ok {
		t.Fatalf("expected score in the session symbol table")
	}

	if _, complete := m.evaluate("total = score"); !complete {
		t.Fatalf("expected complete input")
	}
	names := make([]string, 0, m.symbols.Len())
	for _, sym := range m.symbols.Entries() {
		names = append(names, sym.Name)
	}
	if strings.Join(names, ",") != "score,total" {
		t.Fatalf("unexpected symbol order: %v", names)
	}
}

func TestEvaluateReportsDiagnostics(t *testing.T) {
	m := newREPLModel()

	entry, complete := m.evaluate("x = #")
	if !complete {
		t.Fatalf("expected complete input")
	}
	if !entry.isErr {
		t.Fatalf("expected error entry")
	}
	if len(entry.diagnostics) != 1 || entry.diagnostics[0] != "unexpected character '#' at line 1" {
		t.Fatalf("unexpected diagnostics: %v", entry.diagnostics)
	}
}

func TestUpdateContinuesOpenString(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(`out("first`)

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)
	if rm.pending == "" {
		t.Fatalf("expected pending input after open string")
	}
	if rm.textInput.Prompt != replContPrompt {
		t.Fatalf("expected continuation prompt, got %q", rm.textInput.Prompt)
	}
	if len(rm.history) != 0 {
		t.Fatalf("incomplete input should not be recorded")
	}

	rm.textInput.SetValue(`second")`)
	model, _ = rm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm = model.(replModel)
	if rm.pending != "" {
		t.Fatalf("pending input not cleared")
	}
	if rm.textInput.Prompt != replPrompt {
		t.Fatalf("expected primary prompt, got %q", rm.textInput.Prompt)
	}
	if len(rm.history) != 1 {
		t.Fatalf("expected one history entry, got %d", len(rm.history))
	}
	var found bool
	for _, tok := range rm.history[0].tokens {
		if tok.Kind == rizz.KindString && tok.Text == "first\nsecond" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected multi-line string token, got %v", rm.history[0].tokens)
	}
}

func TestRawCommandTogglesArithmeticMerge(t *testing.T) {
	m := newREPLModel()
	m, _ = m.handleCommand(":raw")
	if !m.raw || !m.lexer.Config().DisableArithmetic {
		t.Fatalf("expected arithmetic merge disabled")
	}

	entry, _ := m.evaluate("a + b")
	if len(entry.tokens) != 3 {
		t.Fatalf("expected raw operator tokens, got %v", entry.tokens)
	}

	m, _ = m.handleCommand(":raw")
	entry, _ = m.evaluate("a + b")
	if len(entry.tokens) != 1 || entry.tokens[0].Kind != rizz.KindArithmetic {
		t.Fatalf("expected merged arithmetic token, got %v", entry.tokens)
	}
}

func TestUnknownCommandIsError(t *testing.T) {
	m := newREPLModel()
	m, _ = m.handleCommand(":bogus")
	if len(m.history) != 1 || !m.history[0].isErr {
		t.Fatalf("expected error entry, got %#v", m.history)
	}
}

func TestCompletionsForIncludesSymbols(t *testing.T) {
	symbols := rizz.NewSymbolTable()
	symbols.Add("income", rizz.IdentifierCategory)

	got := completionsFor("in", symbols)
	want := []string{"in", "input", "int", "integer", "income"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected completions: got %v want %v", got, want)
	}
}

func TestViewRendersHistory(t *testing.T) {
	m := newREPLModel()
	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	rm := model.(replModel)
	rm.textInput.SetValue("int x")
	model, _ = rm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm = model.(replModel)

	view := rm.View()
	if !strings.Contains(view, "RizzLang Lexer REPL") {
		t.Fatalf("missing header in view: %q", view)
	}
	if !strings.Contains(view, `KEYWORD("int")`) {
		t.Fatalf("missing token chip in view: %q", view)
	}
}
