package parser

import (
	"testing"

	"github.com/cwbudde/cc0/internal/ast"
	"github.com/cwbudde/cc0/internal/lexer"
)

func TestResynchronizationRecoversMultipleErrors(t *testing.T) {
	// Both "int a = ;" and "int c = ;" fail to parse an initializer
	// expression, but the parser still surfaces "b" in between: a
	// missing initializer doesn't derail the declarations around it.
	input := "int a = ; int b = 2; int c = ;"
	prog, errs := ParseProgram(lexer.New(input))
	if len(errs) < 2 {
		t.Fatalf("errors = %v, want at least 2", errs)
	}

	var names []string
	for _, d := range prog.Declarations {
		if v, ok := d.(*ast.VariableDecl); ok {
			names = append(names, v.Name)
		}
	}
	if len(names) != 3 || names[1] != "b" {
		t.Errorf("recovered declarations = %v, want [a b c]", names)
	}
}

func TestUnexpectedTopLevelStatementIsRejected(t *testing.T) {
	_, errs := ParseProgram(lexer.New("1 + 2;"))
	if len(errs) == 0 {
		t.Fatalf("expected a syntax error for a bare statement at top level")
	}
}

func TestParserIsTotalOnEmptyInput(t *testing.T) {
	prog, errs := ParseProgram(lexer.New(""))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors on empty input: %v", errs)
	}
	if len(prog.Declarations) != 0 {
		t.Errorf("declarations = %d, want 0", len(prog.Declarations))
	}
}
