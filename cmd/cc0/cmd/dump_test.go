package cmd

import (
	"bytes"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/cwbudde/cc0/internal/lexer"
	"github.com/cwbudde/cc0/internal/parser"
)

func TestDumpVerboseJSON(t *testing.T) {
	src := "int add(int a, int b) { return a + b; }"
	prog, errs := parser.ParseProgram(lexer.New(src))
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	var buf bytes.Buffer
	if err := dumpVerbose(&buf, src, prog, true); err != nil {
		t.Fatalf("dumpVerbose: %v", err)
	}

	out := buf.String()
	astSection := bytes.Index([]byte(out), []byte("=== ast ===\n"))
	if astSection < 0 {
		t.Fatalf("no ast section found in dump output:\n%s", out)
	}
	jsonStart := bytes.IndexByte([]byte(out[astSection:]), '{')
	if jsonStart < 0 {
		t.Fatalf("no JSON object found in dump output:\n%s", out)
	}

	doc := out[astSection+jsonStart:]
	name := gjson.Get(doc, "declarations.0.name")
	if name.String() != "add" {
		t.Errorf("declarations.0.name = %q, want %q", name.String(), "add")
	}
	returnType := gjson.Get(doc, "declarations.0.returnType")
	if returnType.String() != "int" {
		t.Errorf("declarations.0.returnType = %q, want %q", returnType.String(), "int")
	}
}

func TestDumpTokens(t *testing.T) {
	var buf bytes.Buffer
	dumpTokens(&buf, "int main() { return 0; }")
	out := buf.String()
	if !bytes.Contains([]byte(out), []byte("KEYWORD")) {
		t.Errorf("expected a KEYWORD token line in:\n%s", out)
	}
}
