package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFmtCommandRequiresPath(t *testing.T) {
	err := fmtCommand(nil)
	if err == nil {
		t.Fatalf("expected path required error")
	}
	if !strings.Contains(err.Error(), "path required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFmtCommandCheckDetectsUnformattedFiles(t *testing.T) {
	path := writeRizzFile(t, "int x = 1  \nout(x)\t \n")
	err := fmtCommand([]string{"-check", path})
	if err == nil {
		t.Fatalf("expected formatting check failure")
	}
	if !strings.Contains(err.Error(), "need formatting") {
		t.Fatalf("unexpected check error: %v", err)
	}
}

func TestFmtCommandWriteFormatsFileInPlace(t *testing.T) {
	path := writeRizzFile(t, "int x = 1  \nout(x)\t \n\n\n")
	if err := fmtCommand([]string{"-w", path}); err != nil {
		t.Fatalf("fmt -w failed: %v", err)
	}

	updated, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read formatted file: %v", err)
	}
	if got := string(updated); got != "int x = 1\nout(x)\n" {
		t.Fatalf("unexpected formatted output: %q", got)
	}
}

func TestFmtCommandPrintsFormattedOutput(t *testing.T) {
	path := writeRizzFile(t, "int x = 1  \r\nout(x)")
	out, err := captureStdout(t, func() error {
		return fmtCommand([]string{path})
	})
	if err != nil {
		t.Fatalf("fmt command failed: %v", err)
	}
	if out != "int x = 1\nout(x)\n" {
		t.Fatalf("unexpected stdout output: %q", out)
	}
}

func TestFmtCommandFormatsDirectories(t *testing.T) {
	root := t.TempDir()
	first := filepath.Join(root, "a.rizz")
	second := filepath.Join(root, "nested", "b.rizz")
	ignored := filepath.Join(root, "notes.txt")
	if err := os.MkdirAll(filepath.Dir(second), 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}
	if err := os.WriteFile(first, []byte("int a  \n"), 0o644); err != nil {
		t.Fatalf("write first file: %v", err)
	}
	if err := os.WriteFile(second, []byte("int b\t\n"), 0o644); err != nil {
		t.Fatalf("write second file: %v", err)
	}
	if err := os.WriteFile(ignored, []byte("left alone  \n"), 0o644); err != nil {
		t.Fatalf("write ignored file: %v", err)
	}

	if err := fmtCommand([]string{"-w", root}); err != nil {
		t.Fatalf("fmt directory failed: %v", err)
	}
	if err := fmtCommand([]string{"-check", root}); err != nil {
		t.Fatalf("expected no formatting diffs after write, got %v", err)
	}

	notes, err := os.ReadFile(ignored)
	if err != nil {
		t.Fatalf("read ignored file: %v", err)
	}
	if string(notes) != "left alone  \n" {
		t.Fatalf("non-source file was rewritten: %q", notes)
	}
}

func TestFmtCommandRejectsLexicalErrors(t *testing.T) {
	path := writeRizzFile(t, "x = #\n")
	err := fmtCommand([]string{path})
	if err == nil {
		t.Fatalf("expected format error")
	}
	if !strings.Contains(err.Error(), "unexpected character") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFormatRizzSourcePreservesStringContents(t *testing.T) {
	got, err := formatRizzSource("out(\"a  \nb\")  \n")
	if err != nil {
		t.Fatalf("formatRizzSource failed: %v", err)
	}
	if got != "out(\"a  \nb\")\n" {
		t.Fatalf("unexpected formatted output: %q", got)
	}
}

func TestCollectRizzFilesDedupesTargets(t *testing.T) {
	path := writeRizzFile(t, "int a\n")
	files, err := collectRizzFiles([]string{path, path, filepath.Dir(path)})
	if err != nil {
		t.Fatalf("collectRizzFiles failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected one file, got %v", files)
	}
}

func writeRizzFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.rizz")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write rizz file: %v", err)
	}
	return path
}
