// Package codegen lowers a semantically validated Program into textual
// LLVM IR: one target-triple/prologue header, zero or more private
// string constants, zero or more global variables, and one `define`
// per FunctionDecl that carries a body.
package codegen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cwbudde/cc0/internal/ast"
	"github.com/cwbudde/cc0/internal/types"
)

const defaultTargetTriple = "x86_64-unknown-linux-gnu"

// Options carries the no-op optimization-level surface and an
// optional target-triple override through to the emitted prologue.
// OptLevel is accepted and threaded through per the driver's -O0/-O1/
// -O2 flags but never changes the emitted IR: the generator has no
// optimizer to drive.
type Options struct {
	TargetTriple string
	OptLevel     string
}

// funcMeta is the persistent (whole-unit) function metadata table:
// name, return type, and parameter types, used to type call sites and
// to pick the right `ret` form at the end of a define block.
type funcMeta struct {
	returnType *types.TypeInfo
	paramTypes []*types.TypeInfo
}

// localVar is one entry in the per-function local-variable table: its
// LLVM home (a plain register name for a parameter, an alloca'd slot
// name for a local), its type, and whether it must be loaded to read.
type localVar struct {
	reg      string
	typ      *types.TypeInfo
	isAlloca bool
}

// Generator walks a validated Program once, emitting LLVM IR text.
// tempCounter and labelCounter are monotonic for the whole run, never
// reset within a unit, matching the CodeGen tables data model.
type Generator struct {
	functions map[string]funcMeta
	globals   map[string]localVar

	// localScopes is a stack of name->slot tables, one per nested block,
	// mirroring the semantic analyzer's Scope chain so a shadowing
	// declaration in an inner block cannot clobber the outer binding an
	// enclosing statement still refers to. localSeq disambiguates the
	// LLVM register name when the same source name is declared more
	// than once in a function (shadowing still needs distinct SSA
	// registers even though the source names collide).
	localScopes []map[string]localVar
	localSeq    map[string]int

	tempCounter  int
	labelCounter int
	strCounter   int

	stringsOut bytes.Buffer
	globalsOut bytes.Buffer
	bodyOut    bytes.Buffer
	out        *bytes.Buffer // the buffer currently receiving emitted lines

	currentReturnType *types.TypeInfo

	opts Options
	err  error
}

func New() *Generator {
	return &Generator{functions: make(map[string]funcMeta), globals: make(map[string]localVar), opts: Options{TargetTriple: defaultTargetTriple}}
}

// NewWithOptions is New but honors a caller-supplied target triple; an
// empty TargetTriple falls back to defaultTargetTriple. OptLevel is
// stored only for completeness — it never affects emitted IR.
func NewWithOptions(opts Options) *Generator {
	if opts.TargetTriple == "" {
		opts.TargetTriple = defaultTargetTriple
	}
	return &Generator{functions: make(map[string]funcMeta), globals: make(map[string]localVar), opts: opts}
}

// Generate lowers prog to a complete LLVM IR module, or returns the
// first lowering error encountered.
func Generate(prog *ast.Program) (string, error) {
	g := New()
	return g.run(prog)
}

// GenerateWithOptions is Generate with an explicit Options override.
func GenerateWithOptions(prog *ast.Program, opts Options) (string, error) {
	g := NewWithOptions(opts)
	return g.run(prog)
}

func (g *Generator) run(prog *ast.Program) (string, error) {
	g.registerFunctions(prog)
	if g.err != nil {
		return "", g.err
	}

	g.out = &g.globalsOut
	for _, decl := range prog.Declarations {
		if g.err != nil {
			return "", g.err
		}
		switch d := decl.(type) {
		case *ast.VariableDecl:
			g.emitGlobalVariable(d)
		case *ast.FunctionDecl:
			if d.Body != nil {
				g.out = &g.bodyOut
				g.emitFunction(d)
			}
		}
	}
	if g.err != nil {
		return "", g.err
	}

	var module bytes.Buffer
	module.WriteString("; LLVM IR Generated Code\n")
	fmt.Fprintf(&module, "target triple = %q\n", g.opts.TargetTriple)
	module.WriteString("declare i32 @printf(i8* nocapture readonly, ...)\n")
	module.WriteString("declare i32 @scanf(i8* nocapture readonly, ...)\n")
	module.Write(g.stringsOut.Bytes())
	module.Write(g.globalsOut.Bytes())
	module.Write(g.bodyOut.Bytes())
	return module.String(), nil
}

// registerFunctions populates the whole-unit function metadata table
// before any body is lowered, so a call site can type-check and pick a
// return form regardless of source order.
func (g *Generator) registerFunctions(prog *ast.Program) {
	for _, decl := range prog.Declarations {
		fn, ok := decl.(*ast.FunctionDecl)
		if !ok {
			continue
		}
		retType, ok := lookupType(fn.ReturnType)
		if !ok {
			g.fail("unsupported return type %q on %s", fn.ReturnType, fn.Name)
			return
		}
		paramTypes := make([]*types.TypeInfo, len(fn.Params))
		for i, p := range fn.Params {
			pt, ok := lookupType(p.Type)
			if !ok {
				g.fail("unsupported parameter type %q on %s", p.Type, fn.Name)
				return
			}
			paramTypes[i] = pt
		}
		g.functions[fn.Name] = funcMeta{returnType: retType, paramTypes: paramTypes}
	}
}

// lookupType resolves the three primitives the code generator actually
// lowers; struct/pointer/array type names never reach here because the
// semantic analyzer has already rejected anything codegen cannot
// handle for a FunctionDecl's return/parameter types.
func lookupType(name string) (*types.TypeInfo, bool) {
	switch name {
	case "void":
		return types.VoidType, true
	case "int":
		return types.IntType, true
	case "char":
		return types.CharType, true
	default:
		return nil, false
	}
}

func (g *Generator) fail(format string, args ...any) {
	if g.err == nil {
		g.err = fmt.Errorf(format, args...)
	}
}

func (g *Generator) emitf(format string, args ...any) {
	fmt.Fprintf(g.out, format, args...)
}

func (g *Generator) newTemp() string {
	name := fmt.Sprintf("%%t%d", g.tempCounter)
	g.tempCounter++
	return name
}

func (g *Generator) newLabel() string {
	name := fmt.Sprintf("label%d", g.labelCounter)
	g.labelCounter++
	return name
}

func (g *Generator) pushScope() {
	g.localScopes = append(g.localScopes, make(map[string]localVar))
}

func (g *Generator) popScope() {
	g.localScopes = g.localScopes[:len(g.localScopes)-1]
}

// declareLocal binds name in the innermost scope, reserving a fresh
// register name on every declaration (even a repeat of a name already
// bound outer) so a shadowing `int a` in a nested block never reuses
// the enclosing `a`'s SSA register.
func (g *Generator) declareLocal(name string, mk func(slot string) localVar) localVar {
	seq := g.localSeq[name]
	slot := "%" + name
	if seq > 0 {
		slot = fmt.Sprintf("%%%s.%d", name, seq)
	}
	g.localSeq[name] = seq + 1
	v := mk(slot)
	g.localScopes[len(g.localScopes)-1][name] = v
	return v
}

// lookupLocal walks the scope stack innermost-first, falling back to
// the whole-unit global table so a function body can read or assign a
// top-level VariableDecl the same way it does a local.
func (g *Generator) lookupLocal(name string) (localVar, bool) {
	for i := len(g.localScopes) - 1; i >= 0; i-- {
		if v, ok := g.localScopes[i][name]; ok {
			return v, true
		}
	}
	if v, ok := g.globals[name]; ok {
		return v, true
	}
	return localVar{}, false
}

func (g *Generator) emitGlobalVariable(v *ast.VariableDecl) {
	t, ok := lookupType(v.Type)
	if !ok {
		g.fail("unsupported global type %q on %s", v.Type, v.Name)
		return
	}
	init := "zeroinitializer"
	if v.Init != nil {
		lit, ok := v.Init.(*ast.NumberLiteral)
		if !ok {
			g.fail("unsupported global initializer for %s: must be a constant integer literal", v.Name)
			return
		}
		init = fmt.Sprintf("%d", lit.Value)
	}
	g.emitf("@%s = global %s %s\n", v.Name, t.LLVMName(), init)
	g.globals[v.Name] = localVar{reg: "@" + v.Name, typ: t, isAlloca: true}
}

func (g *Generator) emitFunction(fn *ast.FunctionDecl) {
	g.localScopes = nil
	g.localSeq = make(map[string]int)
	g.pushScope()
	defer g.popScope()

	meta := g.functions[fn.Name]
	g.currentReturnType = meta.returnType

	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		pt := meta.paramTypes[i]
		params[i] = fmt.Sprintf("%s %%%s", pt.LLVMName(), p.Name)
		g.declareLocal(p.Name, func(slot string) localVar {
			return localVar{reg: slot, typ: pt, isAlloca: false}
		})
	}

	g.emitf("define %s @%s(%s) {\n", meta.returnType.LLVMName(), fn.Name, joinArgs(params))
	g.emitf("entry:\n")
	g.emitCompoundStmt(fn.Body)
	if g.err != nil {
		return
	}
	g.emitDefaultReturn(meta.returnType)
	g.emitf("}\n")
}

func (g *Generator) emitDefaultReturn(rt *types.TypeInfo) {
	if rt.Kind == types.Void {
		g.emitf("  ret void\n")
		return
	}
	g.emitf("  ret %s 0\n", rt.LLVMName())
}

func joinArgs(args []string) string {
	return strings.Join(args, ", ")
}
