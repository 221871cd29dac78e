package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgomes/rizzlang/rizz"
	"github.com/peterh/liner"
)

const historyFile = ".rizz_history"

// plainSession holds the state of a line-mode REPL independent of the
// terminal.
type plainSession struct {
	lexer   *rizz.Lexer
	symbols *rizz.SymbolTable
}

func newPlainSession() *plainSession {
	return &plainSession{
		lexer:   rizz.MustNewLexer(rizz.Config{}),
		symbols: rizz.NewSymbolTable(),
	}
}

func runPlainREPL() error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	session := newPlainSession()
	ln.SetCompleter(func(line string) []string {
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasSuffix(line, " ") {
			return nil
		}
		last := fields[len(fields)-1]
		prefix := strings.TrimSuffix(line, last)
		var out []string
		for _, c := range completionsFor(last, session.symbols) {
			out = append(out, prefix+c)
		}
		return out
	})

	fmt.Println("RizzLang lexer REPL. Type :help for commands, :quit to exit.")
	for {
		source, ok := session.read(ln)
		if !ok {
			fmt.Println()
			return nil
		}
		if session.handle(source, os.Stdout, os.Stderr) {
			return nil
		}
		if strings.TrimSpace(source) != "" {
			ln.AppendHistory(strings.ReplaceAll(source, "\n", " "))
		}
	}
}

// read collects lines until the source no longer ends inside a string
// literal or block comment.
func (s *plainSession) read(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := replPrompt
		if b.Len() > 0 {
			prompt = replContPrompt
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") || !s.needsMore(src) {
			return src, true
		}
	}
}

func (s *plainSession) needsMore(src string) bool {
	return s.lexer.Analyze(src).Incomplete()
}

// handle runs one REPL entry and reports whether the session should end.
func (s *plainSession) handle(source string, stdout, stderr io.Writer) bool {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return false
	}

	if strings.HasPrefix(trimmed, ":") {
		switch strings.ToLower(strings.Fields(trimmed)[0]) {
		case ":quit", ":q":
			return true
		case ":help", ":h":
			fmt.Fprintln(stdout, "Commands: :symbols  :table  :reset  :quit")
		case ":symbols", ":s":
			entries := s.symbols.Entries()
			if len(entries) == 0 {
				fmt.Fprintln(stdout, "No identifiers recorded")
			}
			for _, sym := range entries {
				fmt.Fprintf(stdout, "%s\t%s\n", sym.Name, sym.Category)
			}
		case ":table", ":t":
			fmt.Fprint(stdout, s.lexer.Table().String())
		case ":reset", ":r":
			s.symbols = rizz.NewSymbolTable()
			fmt.Fprintln(stdout, "Symbol table reset")
		default:
			fmt.Fprintf(stderr, "unknown command %s. Type :quit to exit.\n", trimmed)
		}
		return false
	}

	analysis := s.lexer.Analyze(source)
	s.symbols.AddTokens(analysis.Tokens)
	for _, tok := range analysis.Tokens {
		fmt.Fprintf(stdout, "%-10s %q\n", tok.Kind, tok.Text)
	}
	for _, msg := range analysis.Diagnostics.Messages() {
		fmt.Fprintln(stderr, msg)
	}
	return false
}
