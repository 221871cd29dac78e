package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mgomes/rizzlang/rizz"
)

type checkIssue struct {
	Path       string
	Diagnostic rizz.Diagnostic
	Frame      string
}

func checkCommand(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	frames := fs.Bool("frames", false, "print the offending source line under each issue")
	if err := fs.Parse(args); err != nil {
		return err
	}

	targets := fs.Args()
	if len(targets) == 0 {
		return errors.New("rizz check: path required")
	}
	files, err := collectRizzFiles(targets)
	if err != nil {
		return err
	}

	lx := rizz.MustNewLexer(rizz.Config{})
	var issues []checkIssue
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		issues = append(issues, checkSource(lx, path, string(data))...)
	}

	if len(issues) == 0 {
		fmt.Println("No issues found")
		return nil
	}

	for _, issue := range issues {
		line := max(issue.Diagnostic.Line, 1)
		fmt.Printf("%s:%d: %s\n", issue.Path, line, issue.Diagnostic.Message)
		if *frames && issue.Frame != "" {
			fmt.Println(issue.Frame)
		}
	}

	return fmt.Errorf("check found %d issue(s)", len(issues))
}

func checkSource(lx *rizz.Lexer, path, source string) []checkIssue {
	analysis := lx.Analyze(source)
	issues := make([]checkIssue, 0, analysis.Diagnostics.Len())
	for _, d := range analysis.Diagnostics.All() {
		issues = append(issues, checkIssue{
			Path:       path,
			Diagnostic: d,
			Frame:      analysis.Frame(d),
		})
	}
	return issues
}
