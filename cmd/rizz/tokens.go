package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mgomes/rizzlang/rizz"
)

type tokensOutput struct {
	Tokens      []rizz.Token      `json:"tokens"`
	Symbols     []rizz.Symbol     `json:"symbols"`
	Diagnostics []rizz.Diagnostic `json:"diagnostics"`
}

func tokensCommand(args []string) error {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	raw := fs.Bool("raw", false, "skip arithmetic reclassification")
	digits := fs.Int("digits", rizz.DefaultFractionDigits, "fractional digits kept on decimals")
	symbols := fs.Bool("symbols", true, "print the symbol table")
	showTable := fs.Bool("table", false, "print the transition table")
	asJSON := fs.Bool("json", false, "print tokens, symbols and diagnostics as JSON")
	pretty := fs.Bool("pretty", false, "render styled tables")
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("rizz tokens: source path required")
	}
	_, source, err := readSource(remaining[0])
	if err != nil {
		return err
	}

	lx, err := rizz.NewLexer(rizz.Config{FractionDigits: *digits, DisableArithmetic: *raw})
	if err != nil {
		return fmt.Errorf("configure lexer: %w", err)
	}
	analysis := lx.Analyze(source)

	opts := rizz.ReportOptions{Symbols: *symbols, Table: *showTable}
	switch {
	case *asJSON:
		err = writeTokensJSON(os.Stdout, analysis)
	case *pretty:
		_, err = fmt.Print(renderAnalysis(analysis, opts))
	default:
		err = rizz.WriteReport(os.Stdout, analysis, opts)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if n := analysis.Diagnostics.Len(); n > 0 {
		return fmt.Errorf("lexical analysis found %d error(s)", n)
	}
	return nil
}

func writeTokensJSON(w io.Writer, a *rizz.Analysis) error {
	out := tokensOutput{
		Tokens:      a.Tokens,
		Symbols:     a.Symbols.Entries(),
		Diagnostics: a.Diagnostics.All(),
	}
	if out.Tokens == nil {
		out.Tokens = []rizz.Token{}
	}
	if out.Symbols == nil {
		out.Symbols = []rizz.Symbol{}
	}
	if out.Diagnostics == nil {
		out.Diagnostics = []rizz.Diagnostic{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
