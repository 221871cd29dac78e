package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mgomes/rizzlang/rizz"
)

var (
	accentColor    = lipgloss.Color("#3B82F6")
	successColor   = lipgloss.Color("#10B981")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	highlightColor = lipgloss.Color("#F59E0B")
	stringColor    = lipgloss.Color("#A855F7")

	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(highlightColor)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)
)

func kindStyle(kind rizz.TokenKind) lipgloss.Style {
	switch kind {
	case rizz.KindKeyword, rizz.KindBoolean:
		return lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	case rizz.KindInteger, rizz.KindDecimal:
		return lipgloss.NewStyle().Foreground(highlightColor)
	case rizz.KindString, rizz.KindCharacter:
		return lipgloss.NewStyle().Foreground(stringColor)
	case rizz.KindArithmetic:
		return resultStyle
	case rizz.KindOperator, rizz.KindComment:
		return mutedStyle
	case rizz.KindError:
		return errorStyle.Bold(true)
	default:
		return lipgloss.NewStyle()
	}
}

// renderTokenChips renders tokens inline as KIND(text).
func renderTokenChips(tokens []rizz.Token) string {
	if len(tokens) == 0 {
		return mutedStyle.Render("(no tokens)")
	}
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = kindStyle(tok.Kind).Render(fmt.Sprintf("%s(%q)", tok.Kind, tok.Text))
	}
	return strings.Join(parts, " ")
}

func renderTokenTable(tokens []rizz.Token) string {
	rows := make([][]string, len(tokens))
	for i, tok := range tokens {
		rows[i] = []string{fmt.Sprintf("%d", tok.Line), string(tok.Kind), fmt.Sprintf("%q", tok.Text)}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(accentColor)).
		Headers("LINE", "KIND", "LEXEME").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 1 && row >= 0 && row < len(tokens) {
				return kindStyle(tokens[row].Kind).Padding(0, 1)
			}
			return cellStyle
		}).
		Render()
}

func renderSymbolTable(symbols *rizz.SymbolTable) string {
	entries := symbols.Entries()
	if len(entries) == 0 {
		return borderStyle.Render(mutedStyle.Render("No identifiers recorded"))
	}
	rows := make([][]string, len(entries))
	for i, sym := range entries {
		rows[i] = []string{sym.Name, sym.Category}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(accentColor)).
		Headers("IDENTIFIER", "TYPE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 0 {
				return cellStyle.Foreground(highlightColor)
			}
			return cellStyle
		}).
		Render()
}

func renderTransitionTable(t *rizz.Table) string {
	headers := []string{"STATE"}
	for _, c := range t.Categories() {
		headers = append(headers, c.String())
	}

	states := t.States()
	rows := make([][]string, len(states))
	for i, s := range states {
		row := []string{rizz.RowLabel(s)}
		for _, c := range t.Categories() {
			row = append(row, rizz.Cell(t.Next(s, c)))
		}
		rows[i] = row
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(mutedColor)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return lipgloss.NewStyle().Foreground(accentColor).Bold(true)
			case col == 0:
				return lipgloss.NewStyle().Foreground(highlightColor)
			case row >= 0 && row < len(rows) && rows[row][col] == "ERR":
				return mutedStyle
			default:
				return resultStyle
			}
		}).
		Render()
}

func renderDiagnostics(diags []rizz.Diagnostic) string {
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = errorStyle.Render("✗ " + d.String())
	}
	return strings.Join(lines, "\n")
}

// renderAnalysis is the styled counterpart of rizz.WriteReport.
func renderAnalysis(a *rizz.Analysis, opts rizz.ReportOptions) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Tokens (%d)", len(a.Tokens))) + "\n")
	b.WriteString(renderTokenTable(a.Tokens) + "\n")
	if opts.Symbols {
		b.WriteString("\n" + headerStyle.Render("Symbol Table") + "\n")
		b.WriteString(renderSymbolTable(a.Symbols) + "\n")
	}
	if opts.Table {
		b.WriteString("\n" + headerStyle.Render("Transition Table") + "\n")
		b.WriteString(renderTransitionTable(rizz.DefaultTable()) + "\n")
	}
	if a.Diagnostics.Len() > 0 {
		b.WriteString("\n" + headerStyle.Render("Errors") + "\n")
		b.WriteString(renderDiagnostics(a.Diagnostics.All()) + "\n")
	}
	return b.String()
}
