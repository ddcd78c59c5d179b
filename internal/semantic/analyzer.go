// Package semantic walks a parsed Program once, building a tree of
// scopes and a per-scope symbol table while resolving type names,
// checking declarations and uses, and validating call arity and
// assignment targets.
package semantic

import (
	"fmt"

	"github.com/cwbudde/cc0/internal/ast"
	"github.com/cwbudde/cc0/internal/types"
)

// Analyzer performs the single AST walk. The first error recorded
// halts the walk; Analyze returns that error to the caller.
type Analyzer struct {
	global   *Scope
	current  *Scope
	registry *types.Registry
	err      error
}

func NewAnalyzer() *Analyzer {
	global := NewScope(nil)
	return &Analyzer{global: global, current: global, registry: types.NewRegistry()}
}

// Analyze walks prog, returning the first semantic error encountered,
// or nil if the program is well-formed.
func (a *Analyzer) Analyze(prog *ast.Program) error {
	for _, decl := range prog.Declarations {
		if a.err != nil {
			break
		}
		a.analyzeTopLevel(decl)
	}
	return a.err
}

// Global returns the top-level scope built during Analyze, for callers
// that want to render the resulting symbol table (e.g. the verbose
// dump path). Valid regardless of whether Analyze succeeded.
func (a *Analyzer) Global() *Scope {
	return a.global
}

func (a *Analyzer) fail(format string, args ...any) {
	if a.err == nil {
		a.err = fmt.Errorf(format, args...)
	}
}

func (a *Analyzer) resolveType(name string) (*types.TypeInfo, bool) {
	return a.registry.Lookup(name)
}

func (a *Analyzer) enterScope() {
	a.current = NewScope(a.current)
}

// exitScope returns to the parent scope recorded on entry; the global
// scope (Parent == nil) is never exited.
func (a *Analyzer) exitScope() {
	if a.current.Parent != nil {
		a.current = a.current.Parent
	}
}

func (a *Analyzer) analyzeTopLevel(decl ast.Declaration) {
	switch d := decl.(type) {
	case *ast.FunctionDecl:
		a.analyzeFunctionDecl(d)
	case *ast.VariableDecl:
		a.analyzeVariableDecl(d)
	default:
		a.fail("unsupported top-level declaration %T", decl)
	}
}

func (a *Analyzer) analyzeFunctionDecl(fn *ast.FunctionDecl) {
	retType, ok := a.resolveType(fn.ReturnType)
	if !ok {
		a.fail("unknown type name: %s", fn.ReturnType)
		return
	}

	paramTypes := make([]*types.TypeInfo, len(fn.Params))
	for i, p := range fn.Params {
		pt, ok := a.resolveType(p.Type)
		if !ok {
			a.fail("unknown type name: %s", p.Type)
			return
		}
		paramTypes[i] = pt
	}

	if a.current.Declared(fn.Name) {
		a.fail("redeclaration of %s", fn.Name)
		return
	}
	a.current.Define(&Symbol{
		Name: fn.Name, Type: retType, Kind: Function,
		Initialized: true, ParamTypes: paramTypes,
	})

	if fn.Body == nil {
		return // prototype: no body to walk
	}

	a.enterScope()
	defer a.exitScope()

	for i, p := range fn.Params {
		if a.current.Declared(p.Name) {
			a.fail("redeclaration of parameter %s", p.Name)
			return
		}
		a.current.Define(&Symbol{Name: p.Name, Type: paramTypes[i], Kind: Parameter, Initialized: true})
	}

	a.analyzeCompoundStmtBody(fn.Body)
}

func (a *Analyzer) analyzeVariableDecl(v *ast.VariableDecl) {
	t, ok := a.resolveType(v.Type)
	if !ok {
		a.fail("unknown type name: %s", v.Type)
		return
	}
	if a.current.Declared(v.Name) {
		a.fail("redeclaration of %s", v.Name)
		return
	}
	if v.Init != nil {
		a.analyzeExpression(v.Init)
	}
	// Every declared variable is treated as initialized whether or not
	// it carries an initializer — a pragmatic relaxation that disables
	// uninitialized-use diagnostics; preserved deliberately.
	a.current.Define(&Symbol{Name: v.Name, Type: t, Kind: Variable, Initialized: true})
}

// analyzeCompoundStmtBody walks the statements of a CompoundStmt
// without opening an additional scope of its own — the caller (a
// FunctionDecl body, or an enclosing CompoundStmt/ForStmt) has already
// entered the scope the statements run in.
func (a *Analyzer) analyzeCompoundStmtBody(block *ast.CompoundStmt) {
	for _, stmt := range block.Statements {
		if a.err != nil {
			return
		}
		a.analyzeStatement(stmt)
	}
}

func (a *Analyzer) analyzeStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VariableDecl:
		a.analyzeVariableDecl(s)
	case *ast.CompoundStmt:
		a.enterScope()
		a.analyzeCompoundStmtBody(s)
		a.exitScope()
	case *ast.ExpressionStmt:
		if s.Expr != nil {
			a.analyzeExpression(s.Expr)
		}
	case *ast.IfStmt:
		a.analyzeExpression(s.Cond)
		a.analyzeStatement(s.Then)
		if a.err == nil && s.Else != nil {
			a.analyzeStatement(s.Else)
		}
	case *ast.WhileStmt:
		a.analyzeExpression(s.Cond)
		if a.err == nil {
			a.analyzeStatement(s.Body)
		}
	case *ast.ForStmt:
		a.analyzeForStmt(s)
	case *ast.ReturnStmt:
		if s.Value != nil {
			a.analyzeExpression(s.Value)
		}
	default:
		a.fail("unsupported statement %T", stmt)
	}
}

func (a *Analyzer) analyzeForStmt(f *ast.ForStmt) {
	a.enterScope()
	defer a.exitScope()

	switch init := f.Init.(type) {
	case *ast.VariableDecl:
		a.analyzeVariableDecl(init)
	case *ast.ExpressionStmt:
		if init.Expr != nil {
			a.analyzeExpression(init.Expr)
		}
	case nil:
		// no initializer
	}
	if a.err != nil {
		return
	}
	if f.Cond != nil {
		a.analyzeExpression(f.Cond)
	}
	if a.err != nil {
		return
	}
	if f.Post != nil {
		a.analyzeExpression(f.Post)
	}
	if a.err != nil {
		return
	}
	a.analyzeStatement(f.Body)
}

func (a *Analyzer) analyzeExpression(expr ast.Expression) {
	if a.err != nil {
		return
	}
	switch e := expr.(type) {
	case *ast.NumberLiteral, *ast.StringLiteral:
		// no name resolution needed
	case *ast.Identifier:
		if _, ok := a.current.Lookup(e.Name); !ok {
			a.fail("undeclared identifier: %s", e.Name)
		}
	case *ast.BinaryExpr:
		a.analyzeExpression(e.Left)
		if a.err == nil {
			a.analyzeExpression(e.Right)
		}
	case *ast.UnaryExpr:
		a.analyzeExpression(e.Operand)
	case *ast.CallExpr:
		a.analyzeCallExpr(e)
	case *ast.AssignmentExpr:
		a.analyzeAssignmentExpr(e)
	default:
		a.fail("unsupported expression %T", expr)
	}
}

func (a *Analyzer) analyzeCallExpr(call *ast.CallExpr) {
	sym, ok := a.current.Lookup(call.Callee)
	if !ok {
		a.fail("undeclared identifier: %s", call.Callee)
		return
	}
	if sym.Kind != Function {
		a.fail("%s is not a function", call.Callee)
		return
	}
	if len(call.Args) != len(sym.ParamTypes) {
		a.fail("wrong number of arguments to %s: got %d, want %d", call.Callee, len(call.Args), len(sym.ParamTypes))
		return
	}
	for _, arg := range call.Args {
		a.analyzeExpression(arg)
		if a.err != nil {
			return
		}
	}
}

func (a *Analyzer) analyzeAssignmentExpr(asn *ast.AssignmentExpr) {
	// The parser already rejects a non-Identifier target, so Target is
	// always *ast.Identifier here; the check is kept as the semantic
	// layer's own guarantee rather than relying solely on syntax.
	if asn.Target == nil {
		a.fail("invalid assignment target")
		return
	}
	sym, ok := a.current.Lookup(asn.Target.Name)
	if !ok {
		a.fail("undeclared identifier: %s", asn.Target.Name)
		return
	}
	a.analyzeExpression(asn.Value)
	if a.err != nil {
		return
	}
	sym.Initialized = true
}
