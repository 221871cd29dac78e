package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mgomes/rizzlang/rizz"
)

const (
	replPrompt     = "rizz> "
	replContPrompt = "  ... "
)

type historyEntry struct {
	input       string
	tokens      []rizz.Token
	diagnostics []string
	output      string
	isErr       bool
}

type replModel struct {
	textInput   textinput.Model
	lexer       *rizz.Lexer
	symbols     *rizz.SymbolTable
	history     []historyEntry
	cmdHistory  []string
	historyIdx  int
	pending     string
	width       int
	height      int
	showHelp    bool
	showSymbols bool
	showTable   bool
	raw         bool
	quitting    bool
	initialized bool
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	CtrlC key.Binding
	CtrlD key.Binding
	CtrlL key.Binding
	Tab   key.Binding
	CtrlS key.Binding
	CtrlT key.Binding
	Help  key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous input"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next input"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "tokenize"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	CtrlD: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "quit"),
	),
	CtrlL: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "autocomplete"),
	),
	CtrlS: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "toggle symbols"),
	),
	CtrlT: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "toggle table"),
	),
	Help: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "toggle help"),
	),
}

func replCommand(args []string) error {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	plain := fs.Bool("plain", false, "use a line-mode prompt instead of the full-screen UI")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *plain {
		return runPlainREPL()
	}
	return runREPL()
}

func newREPLModel() replModel {
	ti := textinput.New()
	ti.Placeholder = "type some source..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = replPrompt

	return replModel{
		textInput:  ti,
		lexer:      rizz.MustNewLexer(rizz.Config{}),
		symbols:    rizz.NewSymbolTable(),
		history:    make([]historyEntry, 0),
		cmdHistory: make([]string, 0),
		historyIdx: -1,
	}
}

func (m replModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		m.initialized = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = make([]historyEntry, 0)
			return m, nil

		case key.Matches(msg, keys.CtrlS):
			m.showSymbols = !m.showSymbols
			return m, nil

		case key.Matches(msg, keys.CtrlT):
			m.showTable = !m.showTable
			return m, nil

		case key.Matches(msg, keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, keys.Up):
			if len(m.cmdHistory) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.cmdHistory) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.historyIdx != -1 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Tab):
			m = m.handleAutocomplete()
			return m, nil

		case key.Matches(msg, keys.Enter):
			line := m.textInput.Value()
			input := strings.TrimSpace(line)
			if input == "" && m.pending == "" {
				return m, nil
			}

			if m.pending == "" && strings.HasPrefix(input, ":") {
				var cmd tea.Cmd
				m, cmd = m.handleCommand(input)
				m.textInput.SetValue("")
				m.historyIdx = -1
				return m, cmd
			}

			source := m.pending + line
			entry, complete := m.evaluate(source)
			if complete {
				m.pending = ""
				m.textInput.Prompt = replPrompt
				m.history = append(m.history, entry)
			} else {
				m.pending = source + "\n"
				m.textInput.Prompt = replContPrompt
			}
			if input != "" {
				m.cmdHistory = append(m.cmdHistory, input)
			}
			m.textInput.SetValue("")
			m.historyIdx = -1
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m replModel) handleCommand(input string) (replModel, tea.Cmd) {
	parts := strings.Fields(input)
	cmd := parts[0]

	switch cmd {
	case ":help", ":h":
		m.showHelp = !m.showHelp
	case ":clear", ":c":
		m.history = make([]historyEntry, 0)
	case ":symbols", ":s":
		m.showSymbols = !m.showSymbols
	case ":table", ":t":
		m.showTable = !m.showTable
	case ":raw":
		m.raw = !m.raw
		m.lexer = rizz.MustNewLexer(rizz.Config{DisableArithmetic: m.raw})
		state := "on"
		if m.raw {
			state = "off"
		}
		m.history = append(m.history, historyEntry{
			input:  input,
			output: "Arithmetic merging " + state,
		})
	case ":reset", ":r":
		m.symbols = rizz.NewSymbolTable()
		m.history = append(m.history, historyEntry{
			input:  input,
			output: "Symbol table reset",
		})
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	default:
		m.history = append(m.history, historyEntry{
			input:  input,
			output: fmt.Sprintf("Unknown command: %s", cmd),
			isErr:  true,
		})
	}
	return m, nil
}

func (m replModel) handleAutocomplete() replModel {
	input := m.textInput.Value()
	if input == "" {
		return m
	}

	words := strings.Fields(input)
	if len(words) == 0 || strings.HasSuffix(input, " ") {
		return m
	}
	lastWord := words[len(words)-1]

	completions := completionsFor(lastWord, m.symbols)

	if len(completions) == 1 {
		prefix := strings.TrimSuffix(input, lastWord)
		m.textInput.SetValue(prefix + completions[0])
		m.textInput.CursorEnd()
	} else if len(completions) > 1 {
		m.history = append(m.history, historyEntry{
			output: "Completions: " + strings.Join(completions, ", "),
		})
	}

	return m
}

// completionsFor lists keywords, boolean literals and known identifiers that
// start with prefix.
func completionsFor(prefix string, symbols *rizz.SymbolTable) []string {
	var completions []string
	candidates := append(rizz.Keywords(), rizz.BooleanLiterals()...)
	for _, sym := range symbols.Entries() {
		candidates = append(candidates, sym.Name)
	}
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			completions = append(completions, c)
		}
	}
	return completions
}

// evaluate tokenizes source. It reports false when the source stops inside a
// string or comment and more lines are needed.
func (m *replModel) evaluate(source string) (historyEntry, bool) {
	analysis := m.lexer.Analyze(source)
	if analysis.Incomplete() {
		return historyEntry{}, false
	}

	m.symbols.AddTokens(analysis.Tokens)
	return historyEntry{
		input:       strings.ReplaceAll(source, "\n", " ⏎ "),
		tokens:      analysis.Tokens,
		diagnostics: analysis.Diagnostics.Messages(),
		isErr:       analysis.Diagnostics.Len() > 0,
	}, true
}

func (m replModel) View() string {
	if !m.initialized {
		return "Loading..."
	}

	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder

	header := headerStyle.Render("RizzLang Lexer REPL")
	mode := mutedStyle.Render("arithmetic merge on")
	if m.raw {
		mode = mutedStyle.Render("arithmetic merge off")
	}
	b.WriteString(header + " " + mode + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", max(min(m.width-2, 60), 0))) + "\n\n")

	reservedLines := 8
	if m.showHelp {
		reservedLines += 12
	}
	if m.showSymbols {
		reservedLines += m.symbols.Len() + 4
	}
	if m.showTable {
		reservedLines += 17
	}
	availableHeight := max(m.height-reservedLines, 1)

	historyStart := 0
	if len(m.history) > availableHeight {
		historyStart = len(m.history) - availableHeight
	}

	for i := historyStart; i < len(m.history); i++ {
		entry := m.history[i]
		if entry.input != "" {
			b.WriteString(mutedStyle.Render("  › ") + entry.input + "\n")
		}
		switch {
		case entry.output != "" && entry.isErr:
			b.WriteString("  " + errorStyle.Render("✗ "+entry.output) + "\n")
		case entry.output != "":
			b.WriteString("  " + resultStyle.Render("→ "+entry.output) + "\n")
		default:
			b.WriteString("  " + renderTokenChips(entry.tokens) + "\n")
			for _, msg := range entry.diagnostics {
				b.WriteString("  " + errorStyle.Render("✗ "+msg) + "\n")
			}
		}
		b.WriteString("\n")
	}

	if m.showSymbols {
		b.WriteString(renderSymbolTable(m.symbols))
		b.WriteString("\n")
	}

	if m.showTable {
		b.WriteString(renderTransitionTable(m.lexer.Table()))
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(renderHelpPanel())
		b.WriteString("\n")
	}

	b.WriteString(m.textInput.View() + "\n\n")

	footer := helpKeyStyle.Render("ctrl+k") + helpDescStyle.Render(" help  ") +
		helpKeyStyle.Render("ctrl+s") + helpDescStyle.Render(" symbols  ") +
		helpKeyStyle.Render("ctrl+t") + helpDescStyle.Render(" table  ") +
		helpKeyStyle.Render("ctrl+l") + helpDescStyle.Render(" clear  ") +
		helpKeyStyle.Render("ctrl+c") + helpDescStyle.Render(" quit")
	b.WriteString(footer)

	return b.String()
}

func renderHelpPanel() string {
	help := []struct {
		key  string
		desc string
	}{
		{"↑/↓", "Navigate input history"},
		{"Tab", "Autocomplete"},
		{"Enter", "Tokenize input"},
		{":help", "Toggle this help"},
		{":symbols", "Toggle symbol table"},
		{":table", "Toggle transition table"},
		{":raw", "Toggle arithmetic merging"},
		{":clear", "Clear history"},
		{":reset", "Reset symbol table"},
		{":quit", "Exit REPL"},
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Help"))
	for _, h := range help {
		line := fmt.Sprintf("  %s  %s",
			helpKeyStyle.Render(fmt.Sprintf("%-9s", h.key)),
			helpDescStyle.Render(h.desc))
		lines = append(lines, line)
	}

	return borderStyle.Render(strings.Join(lines, "\n"))
}

func runREPL() error {
	p := tea.NewProgram(newREPLModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
