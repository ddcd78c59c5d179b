package parser

import (
	"testing"

	"github.com/cwbudde/cc0/internal/ast"
	"github.com/cwbudde/cc0/internal/lexer"
)

func soleExpr(t *testing.T, input string) ast.Expression {
	t.Helper()
	stmts := mainBody(t, "return "+input+";")
	ret, ok := stmts[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("stmt is not *ast.ReturnStmt, got %T", stmts[0])
	}
	return ret.Value
}

func TestBinaryPrecedence(t *testing.T) {
	expr := soleExpr(t, "1 + 2 * 3")
	bin, ok := expr.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expr is not *ast.BinaryExpr, got %T", expr)
	}
	if bin.Operator != "+" {
		t.Fatalf("top operator = %q, want +", bin.Operator)
	}
	right, ok := bin.Right.(*ast.BinaryExpr)
	if !ok || right.Operator != "*" {
		t.Errorf("right operand = %#v, want a '*' BinaryExpr", bin.Right)
	}
}

func TestComparisonBindsLooserThanAdditive(t *testing.T) {
	expr := soleExpr(t, "1 + 2 < 4")
	bin, ok := expr.(*ast.BinaryExpr)
	if !ok || bin.Operator != "<" {
		t.Fatalf("top operator = %#v, want <", expr)
	}
	if _, ok := bin.Left.(*ast.BinaryExpr); !ok {
		t.Errorf("left operand = %T, want a '+' BinaryExpr", bin.Left)
	}
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	stmts := mainBody(t, "int a = 0; int b = 0; a = b = 1;")
	exprStmt, ok := stmts[2].(*ast.ExpressionStmt)
	if !ok {
		t.Fatalf("stmt is not *ast.ExpressionStmt, got %T", stmts[2])
	}
	outer, ok := exprStmt.Expr.(*ast.AssignmentExpr)
	if !ok {
		t.Fatalf("expr is not *ast.AssignmentExpr, got %T", exprStmt.Expr)
	}
	if outer.Target.Name != "a" {
		t.Errorf("outer target = %q, want a", outer.Target.Name)
	}
	if _, ok := outer.Value.(*ast.AssignmentExpr); !ok {
		t.Errorf("outer value = %T, want nested *ast.AssignmentExpr", outer.Value)
	}
}

func TestInvalidAssignmentTargetIsRejected(t *testing.T) {
	_, errs := ParseProgram(lexer.New("int main() { 1 = 2; }"))
	if len(errs) == 0 {
		t.Fatalf("expected a syntax error for an invalid assignment target")
	}
}

func TestNumberLiteralOutOfInt32RangeIsRejected(t *testing.T) {
	_, errs := ParseProgram(lexer.New("int main() { return 5000000000; }"))
	if len(errs) == 0 {
		t.Fatalf("expected a syntax error for a literal out of int32 range")
	}
}

func TestUnaryOperators(t *testing.T) {
	expr := soleExpr(t, "-x")
	u, ok := expr.(*ast.UnaryExpr)
	if !ok || u.Operator != "-" {
		t.Fatalf("expr = %#v, want unary '-'", expr)
	}
}

func TestCallExpressionArguments(t *testing.T) {
	expr := soleExpr(t, "add(1, 2)")
	call, ok := expr.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expr is not *ast.CallExpr, got %T", expr)
	}
	if call.Callee != "add" || len(call.Args) != 2 {
		t.Errorf("callee=%q args=%d, want add/2", call.Callee, len(call.Args))
	}
}

func TestParenthesesOverridePrecedence(t *testing.T) {
	expr := soleExpr(t, "(1 + 2) * 3")
	bin, ok := expr.(*ast.BinaryExpr)
	if !ok || bin.Operator != "*" {
		t.Fatalf("top operator = %#v, want *", expr)
	}
	if _, ok := bin.Left.(*ast.BinaryExpr); !ok {
		t.Errorf("left operand = %T, want a parenthesized '+' BinaryExpr", bin.Left)
	}
}
