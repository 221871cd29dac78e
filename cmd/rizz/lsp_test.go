package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/mgomes/rizzlang/rizz"
)

func TestRunCLIStartsLSPAndExitsOnEOF(t *testing.T) {
	origStdin := os.Stdin
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close write pipe: %v", err)
	}
	os.Stdin = r
	defer func() {
		os.Stdin = origStdin
		_ = r.Close()
	}()

	if err := runCLI([]string{"rizz", "lsp"}); err != nil {
		t.Fatalf("runCLI lsp failed: %v", err)
	}
}

func TestDiagnosticsForSourceWithoutErrors(t *testing.T) {
	lx := rizz.MustNewLexer(rizz.Config{})
	diags := diagnosticsForSource(lx, "int x = 1\nout(x)\n")
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %d", len(diags))
	}
}

func TestDiagnosticsForSourceSpansOffendingLine(t *testing.T) {
	lx := rizz.MustNewLexer(rizz.Config{})
	diags := diagnosticsForSource(lx, "int x = 1\ny = #\n")
	if len(diags) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(diags))
	}
	first := diags[0]
	if first["severity"] != 1 {
		t.Fatalf("expected severity 1, got %#v", first["severity"])
	}
	if first["message"] != "unexpected character '#'" {
		t.Fatalf("unexpected message: %#v", first["message"])
	}
	rng := first["range"].(map[string]any)
	start := rng["start"].(map[string]any)
	end := rng["end"].(map[string]any)
	if start["line"] != 1 || start["character"] != 0 {
		t.Fatalf("unexpected start: %#v", start)
	}
	if end["line"] != 1 || end["character"] != 5 {
		t.Fatalf("unexpected end: %#v", end)
	}
}

func TestCompletionItemsAreSortedAndCategorized(t *testing.T) {
	symbols := rizz.NewSymbolTable()
	symbols.Add("counter", rizz.IdentifierCategory)
	items := completionItems(symbols)
	if len(items) == 0 {
		t.Fatalf("expected completion items")
	}

	labels := make([]string, 0, len(items))
	for _, item := range items {
		label, ok := item["label"].(string)
		if !ok {
			t.Fatalf("unexpected completion label: %#v", item["label"])
		}
		labels = append(labels, label)
	}
	if !slices.IsSorted(labels) {
		t.Fatalf("expected sorted completion labels, got %v", labels)
	}

	keyword := findCompletionItem(t, items, "while")
	if keyword["detail"] != "keyword" || keyword["kind"] != 14 {
		t.Fatalf("unexpected keyword item: %#v", keyword)
	}
	boolean := findCompletionItem(t, items, "true")
	if boolean["detail"] != "boolean literal" || boolean["kind"] != 12 {
		t.Fatalf("unexpected boolean item: %#v", boolean)
	}
	ident := findCompletionItem(t, items, "counter")
	if ident["detail"] != "identifier" || ident["kind"] != 6 {
		t.Fatalf("unexpected identifier item: %#v", ident)
	}
}

func TestHandleMessageDidOpenPublishesDiagnostics(t *testing.T) {
	server := newLSPServer(strings.NewReader(""), &bytes.Buffer{})
	params := map[string]any{
		"textDocument": map[string]any{
			"uri":  "file:///tmp/test.rizz",
			"text": "out(\"never closed\n",
		},
	}
	payload, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("marshal params: %v", err)
	}

	messages := server.handleMessage(lspInboundMessage{
		JSONRPC: "2.0",
		Method:  "textDocument/didOpen",
		Params:  payload,
	})
	if len(messages) != 1 {
		t.Fatalf("expected one publishDiagnostics notification, got %d", len(messages))
	}
	if messages[0].Method != "textDocument/publishDiagnostics" {
		t.Fatalf("unexpected method: %q", messages[0].Method)
	}
	paramsMap, ok := messages[0].Params.(map[string]any)
	if !ok {
		t.Fatalf("unexpected params payload: %#v", messages[0].Params)
	}
	diags, ok := paramsMap["diagnostics"].([]map[string]any)
	if !ok {
		t.Fatalf("unexpected diagnostics payload: %#v", paramsMap["diagnostics"])
	}
	if len(diags) != 1 || diags[0]["message"] != "unterminated string literal" {
		t.Fatalf("unexpected diagnostics: %#v", diags)
	}
}

func TestHandleMessageHoverClassifiesKeywords(t *testing.T) {
	server := newLSPServer(strings.NewReader(""), &bytes.Buffer{})
	server.docs["file:///tmp/test.rizz"] = "int x = 1\nwhile (x > 0)\n"

	cases := []struct {
		line      int
		character int
		want      string
	}{
		{line: 1, character: 2, want: "keyword"},
		{line: 0, character: 4, want: "identifier"},
	}
	for _, tc := range cases {
		params := map[string]any{
			"textDocument": map[string]any{"uri": "file:///tmp/test.rizz"},
			"position":     map[string]any{"line": tc.line, "character": tc.character},
		}
		payload, err := json.Marshal(params)
		if err != nil {
			t.Fatalf("marshal params: %v", err)
		}

		messages := server.handleMessage(lspInboundMessage{
			JSONRPC: "2.0",
			ID:      rawID("1"),
			Method:  "textDocument/hover",
			Params:  payload,
		})
		if len(messages) != 1 {
			t.Fatalf("expected one response, got %d", len(messages))
		}
		result, ok := messages[0].Result.(map[string]any)
		if !ok {
			t.Fatalf("unexpected hover result: %#v", messages[0].Result)
		}
		contents := result["contents"].(map[string]any)
		value, _ := contents["value"].(string)
		if !strings.HasSuffix(value, "RizzLang "+tc.want) {
			t.Fatalf("expected %s classification in hover value, got %q", tc.want, value)
		}
	}
}

func TestHandleMessageUnknownMethod(t *testing.T) {
	server := newLSPServer(strings.NewReader(""), &bytes.Buffer{})
	messages := server.handleMessage(lspInboundMessage{
		JSONRPC: "2.0",
		ID:      rawID("7"),
		Method:  "workspace/symbol",
	})
	if len(messages) != 1 || messages[0].Error == nil || messages[0].Error.Code != -32601 {
		t.Fatalf("expected method not found error, got %#v", messages)
	}
}

func TestServeRoundTrip(t *testing.T) {
	body := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`
	input := fmt.Sprintf("Content-Length: %d\r\n\r\n%s", len(body), body)
	var out bytes.Buffer
	server := newLSPServer(strings.NewReader(input), &out)

	if err := server.serve(); err != nil {
		t.Fatalf("serve failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "Content-Length: ") {
		t.Fatalf("missing header in %q", out.String())
	}
	if !strings.Contains(out.String(), `"name":"rizz-lsp"`) {
		t.Fatalf("missing server info in %q", out.String())
	}
}

func TestWordAtPosition(t *testing.T) {
	source := "int x\noutput(count)\n"
	if word := wordAtPosition(source, 1, 9); word != "count" {
		t.Fatalf("expected count, got %q", word)
	}
	if word := wordAtPosition(source, 1, 6); word != "output" {
		t.Fatalf("expected output, got %q", word)
	}
	if word := wordAtPosition(source, 5, 0); word != "" {
		t.Fatalf("expected no word past the end, got %q", word)
	}
}

func rawID(value string) *json.RawMessage {
	raw := json.RawMessage(value)
	return &raw
}

func findCompletionItem(t *testing.T, items []map[string]any, label string) map[string]any {
	t.Helper()
	for _, item := range items {
		itemLabel, ok := item["label"].(string)
		if ok && itemLabel == label {
			return item
		}
	}
	t.Fatalf("missing completion item %q", label)
	return nil
}
