package codegen_test

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/cc0/internal/codegen"
	"github.com/cwbudde/cc0/internal/lexer"
	"github.com/cwbudde/cc0/internal/parser"
	"github.com/cwbudde/cc0/internal/semantic"
)

func compile(t *testing.T, src string) string {
	t.Helper()
	prog, errs := parser.ParseProgram(lexer.New(src))
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, errs)
	}
	if err := semantic.NewAnalyzer().Analyze(prog); err != nil {
		t.Fatalf("unexpected semantic error for %q: %v", src, err)
	}
	ir, err := codegen.Generate(prog)
	if err != nil {
		t.Fatalf("unexpected codegen error for %q: %v", src, err)
	}
	return ir
}

func TestSimpleReturn(t *testing.T) {
	ir := compile(t, "int main() { return 0; }")
	if !strings.Contains(ir, "define i32 @main() {") {
		t.Errorf("missing main definition in:\n%s", ir)
	}
	if !strings.Contains(ir, "ret i32") {
		t.Errorf("missing ret i32 in:\n%s", ir)
	}
	snaps.MatchSnapshot(t, "simple_return", ir)
}

func TestTwoFunctionCall(t *testing.T) {
	ir := compile(t, "int add(int a, int b) { return a + b; } int main() { return add(2, 3); }")
	if strings.Count(ir, "define ") != 2 {
		t.Errorf("expected exactly two define blocks in:\n%s", ir)
	}
	if !strings.Contains(ir, "call i32 @add(") {
		t.Errorf("missing call to @add in:\n%s", ir)
	}
	snaps.MatchSnapshot(t, "two_function_call", ir)
}

func TestForLoopSummation(t *testing.T) {
	ir := compile(t, "int main() { int i; int s = 0; for (i = 0; i < 5; i = i + 1) { s = s + i; } return s; }")
	if !strings.Contains(ir, "%i = alloca i32") || !strings.Contains(ir, "%s = alloca i32") {
		t.Errorf("missing allocas for i/s in:\n%s", ir)
	}
	if strings.Count(ir, "label") < 4 {
		t.Errorf("expected at least a cond/body/incr/end label quadruple in:\n%s", ir)
	}
	snaps.MatchSnapshot(t, "for_loop_summation", ir)
}

func TestEmptyProgramOnlyPrologue(t *testing.T) {
	ir := compile(t, "")
	if strings.Contains(ir, "define ") {
		t.Errorf("empty program should emit no define blocks:\n%s", ir)
	}
	if !strings.Contains(ir, "target triple") {
		t.Errorf("missing prologue in:\n%s", ir)
	}
}

func TestFunctionPrototypeEmitsNoDefine(t *testing.T) {
	ir := compile(t, "int f(int a); int main() { return 0; }")
	if strings.Count(ir, "define ") != 1 {
		t.Errorf("expected exactly one define block (main only) in:\n%s", ir)
	}
}

func TestNonConstantGlobalInitializerIsRejected(t *testing.T) {
	prog, errs := parser.ParseProgram(lexer.New("int a = 1 + 1; int main() { return a; }"))
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	if err := semantic.NewAnalyzer().Analyze(prog); err != nil {
		t.Fatalf("unexpected semantic error: %v", err)
	}
	if _, err := codegen.Generate(prog); err == nil {
		t.Fatalf("expected a codegen error for a non-literal global initializer")
	}
}

func TestIfWithoutElseBranchesToEnd(t *testing.T) {
	ir := compile(t, "int main() { if (1) { return 1; } return 0; }")
	if !strings.Contains(ir, "br i1") {
		t.Errorf("missing conditional branch in:\n%s", ir)
	}
	snaps.MatchSnapshot(t, "if_without_else", ir)
}

func TestShadowedLocalGetsDistinctRegister(t *testing.T) {
	ir := compile(t, "int main() { int a = 1; { int a = 2; } return a; }")
	if !strings.Contains(ir, "%a = alloca i32") || !strings.Contains(ir, "%a.1 = alloca i32") {
		t.Errorf("expected distinct registers for shadowed %%a/%%a.1 in:\n%s", ir)
	}
	if !strings.Contains(ir, "load i32, i32* %a\n") {
		t.Errorf("expected the trailing return to read the outer %%a, not the shadowed one, in:\n%s", ir)
	}
}

func TestGlobalVariableReadAndWritten(t *testing.T) {
	ir := compile(t, "int counter = 1; int main() { counter = counter + 1; return counter; }")
	if !strings.Contains(ir, "@counter = global i32 1") {
		t.Errorf("missing global definition in:\n%s", ir)
	}
	if !strings.Contains(ir, "load i32, i32* @counter") {
		t.Errorf("expected a load from @counter in:\n%s", ir)
	}
	if !strings.Contains(ir, "store i32 %t") || !strings.Contains(ir, ", i32* @counter") {
		t.Errorf("expected a store back to @counter in:\n%s", ir)
	}
}

func TestEmptyForUnconditionalBranch(t *testing.T) {
	ir := compile(t, "int main() { for (;;) { return 1; } }")
	lines := strings.Split(ir, "\n")
	found := false
	for i, l := range lines {
		if strings.HasSuffix(strings.TrimSpace(l), ":") && i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if strings.HasPrefix(next, "br label") {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("expected an unconditional branch out of the cond block in:\n%s", ir)
	}
}
