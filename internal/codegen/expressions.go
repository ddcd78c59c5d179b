package codegen

import (
	"github.com/cwbudde/cc0/internal/ast"
	"github.com/cwbudde/cc0/internal/types"
)

var arithmeticOps = map[string]string{
	"+": "add", "-": "sub", "*": "mul", "/": "sdiv",
}

var comparisonPredicates = map[string]string{
	"==": "eq", "!=": "ne", "<": "slt", "<=": "sle", ">": "sgt", ">=": "sge",
}

func isComparisonOp(op string) bool {
	_, ok := comparisonPredicates[op]
	return ok
}

// emitExpression lowers e, returning the register holding its value and
// the value's LLVM-facing type. Comparisons are always widened to i32
// here: this is the "non-branch expression context" path the Open
// Question resolution leaves untouched (e.g. `x = (a < b);`).
func (g *Generator) emitExpression(e ast.Expression) (string, *types.TypeInfo) {
	if g.err != nil {
		return "", types.IntType
	}
	switch expr := e.(type) {
	case *ast.NumberLiteral:
		reg := g.newTemp()
		g.emitf("  %s = add i32 %d, 0\n", reg, expr.Value)
		return reg, types.IntType

	case *ast.StringLiteral:
		return g.emitStringLiteral(expr)

	case *ast.Identifier:
		return g.emitIdentifier(expr)

	case *ast.BinaryExpr:
		return g.emitBinaryExpr(expr)

	case *ast.UnaryExpr:
		return g.emitUnaryExpr(expr)

	case *ast.CallExpr:
		return g.emitCallExpr(expr)

	case *ast.AssignmentExpr:
		return g.emitAssignmentExpr(expr)

	default:
		g.fail("codegen: unsupported expression %T", e)
		return "", types.IntType
	}
}

// emitCondition lowers e for use as a branch condition, producing an
// i1 register. Per the Open Question resolution, a comparison or a
// logical-not is lowered directly to its pre-zext i1 result here
// rather than going through the i32-widened emitExpression path; any
// other expression shape is synthesized into an `icmp ne <ty> %v, 0`
// at the branch site.
func (g *Generator) emitCondition(e ast.Expression) string {
	if g.err != nil {
		return ""
	}
	if bin, ok := e.(*ast.BinaryExpr); ok && isComparisonOp(bin.Operator) {
		return g.emitRawComparison(bin)
	}
	if u, ok := e.(*ast.UnaryExpr); ok && u.Operator == "!" {
		return g.emitRawLogicalNot(u)
	}
	reg, typ := g.emitExpression(e)
	if g.err != nil {
		return ""
	}
	i1 := g.newTemp()
	g.emitf("  %s = icmp ne %s %s, 0\n", i1, typ.LLVMName(), reg)
	return i1
}

func (g *Generator) emitRawComparison(e *ast.BinaryExpr) string {
	left, _ := g.emitExpression(e.Left)
	if g.err != nil {
		return ""
	}
	right, _ := g.emitExpression(e.Right)
	if g.err != nil {
		return ""
	}
	pred, ok := comparisonPredicates[e.Operator]
	if !ok {
		g.fail("codegen: unsupported comparison operator %q", e.Operator)
		return ""
	}
	reg := g.newTemp()
	g.emitf("  %s = icmp %s i32 %s, %s\n", reg, pred, left, right)
	return reg
}

func (g *Generator) emitRawLogicalNot(u *ast.UnaryExpr) string {
	operand, _ := g.emitExpression(u.Operand)
	if g.err != nil {
		return ""
	}
	reg := g.newTemp()
	g.emitf("  %s = icmp eq i32 %s, 0\n", reg, operand)
	return reg
}

func (g *Generator) emitBinaryExpr(e *ast.BinaryExpr) (string, *types.TypeInfo) {
	if isComparisonOp(e.Operator) {
		i1 := g.emitRawComparison(e)
		if g.err != nil {
			return "", types.IntType
		}
		widened := g.newTemp()
		g.emitf("  %s = zext i1 %s to i32\n", widened, i1)
		return widened, types.IntType
	}

	op, ok := arithmeticOps[e.Operator]
	if !ok {
		g.fail("codegen: unsupported binary operator %q", e.Operator)
		return "", types.IntType
	}
	left, _ := g.emitExpression(e.Left)
	if g.err != nil {
		return "", types.IntType
	}
	right, _ := g.emitExpression(e.Right)
	if g.err != nil {
		return "", types.IntType
	}
	reg := g.newTemp()
	g.emitf("  %s = %s i32 %s, %s\n", reg, op, left, right)
	return reg, types.IntType
}

func (g *Generator) emitUnaryExpr(e *ast.UnaryExpr) (string, *types.TypeInfo) {
	switch e.Operator {
	case "-":
		operand, _ := g.emitExpression(e.Operand)
		if g.err != nil {
			return "", types.IntType
		}
		reg := g.newTemp()
		g.emitf("  %s = sub i32 0, %s\n", reg, operand)
		return reg, types.IntType
	case "!":
		i1 := g.emitRawLogicalNot(e)
		if g.err != nil {
			return "", types.IntType
		}
		widened := g.newTemp()
		g.emitf("  %s = zext i1 %s to i32\n", widened, i1)
		return widened, types.IntType
	default:
		g.fail("codegen: unsupported unary operator %q (pointer operators are not lowered)", e.Operator)
		return "", types.IntType
	}
}

func (g *Generator) emitIdentifier(e *ast.Identifier) (string, *types.TypeInfo) {
	local, ok := g.lookupLocal(e.Name)
	if !ok {
		g.fail("codegen: undefined variable at emission time: %s", e.Name)
		return "", types.IntType
	}
	if !local.isAlloca {
		return local.reg, local.typ
	}
	reg := g.newTemp()
	g.emitf("  %s = load %s, %s* %s\n", reg, local.typ.LLVMName(), local.typ.LLVMName(), local.reg)
	return reg, local.typ
}

func (g *Generator) emitCallExpr(e *ast.CallExpr) (string, *types.TypeInfo) {
	meta, known := g.functions[e.Callee]
	retType := types.IntType
	if known {
		retType = meta.returnType
	}

	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		reg, _ := g.emitExpression(a)
		if g.err != nil {
			return "", types.IntType
		}
		argType := types.IntType
		if known && i < len(meta.paramTypes) {
			argType = meta.paramTypes[i]
		}
		args[i] = argType.LLVMName() + " " + reg
	}

	if retType.Kind == types.Void {
		g.emitf("  call void @%s(%s)\n", e.Callee, joinArgs(args))
		return "", types.VoidType
	}
	reg := g.newTemp()
	g.emitf("  %s = call %s @%s(%s)\n", reg, retType.LLVMName(), e.Callee, joinArgs(args))
	return reg, retType
}

func (g *Generator) emitAssignmentExpr(e *ast.AssignmentExpr) (string, *types.TypeInfo) {
	local, ok := g.lookupLocal(e.Target.Name)
	if !ok {
		g.fail("codegen: undefined variable at emission time: %s", e.Target.Name)
		return "", types.IntType
	}
	if !local.isAlloca {
		g.fail("codegen: cannot assign to parameter %s (not addressable)", e.Target.Name)
		return "", types.IntType
	}
	value, _ := g.emitExpression(e.Value)
	if g.err != nil {
		return "", types.IntType
	}
	g.emitf("  store %s %s, %s* %s\n", local.typ.LLVMName(), value, local.typ.LLVMName(), local.reg)
	return value, local.typ
}
