package codegen

import "github.com/cwbudde/cc0/internal/ast"

func (g *Generator) emitCompoundStmt(block *ast.CompoundStmt) {
	g.pushScope()
	defer g.popScope()
	for _, stmt := range block.Statements {
		if g.err != nil {
			return
		}
		g.emitStatement(stmt)
	}
}

func (g *Generator) emitStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VariableDecl:
		g.emitLocalVariable(s)
	case *ast.CompoundStmt:
		g.emitCompoundStmt(s)
	case *ast.ExpressionStmt:
		if s.Expr != nil {
			g.emitExpression(s.Expr)
		}
	case *ast.IfStmt:
		g.emitIfStmt(s)
	case *ast.WhileStmt:
		g.emitWhileStmt(s)
	case *ast.ForStmt:
		g.emitForStmt(s)
	case *ast.ReturnStmt:
		g.emitReturnStmt(s)
	default:
		g.fail("codegen: unsupported statement %T", stmt)
	}
}

func (g *Generator) emitLocalVariable(v *ast.VariableDecl) {
	t, ok := lookupType(v.Type)
	if !ok {
		g.fail("codegen: unsupported local type %q on %s", v.Type, v.Name)
		return
	}

	var slot string
	g.declareLocal(v.Name, func(s string) localVar {
		slot = s
		return localVar{reg: s, typ: t, isAlloca: true}
	})
	g.emitf("  %s = alloca %s\n", slot, t.LLVMName())

	init := "0"
	if v.Init != nil {
		reg, _ := g.emitExpression(v.Init)
		if g.err != nil {
			return
		}
		init = reg
	}
	g.emitf("  store %s %s, %s* %s\n", t.LLVMName(), init, t.LLVMName(), slot)
}

func (g *Generator) emitIfStmt(s *ast.IfStmt) {
	// Three labels are reserved regardless of whether an else branch
	// is present, so label numbering is stable across both shapes.
	thenLabel := g.newLabel()
	elseLabel := g.newLabel()
	endLabel := g.newLabel()

	cond := g.emitCondition(s.Cond)
	if g.err != nil {
		return
	}
	falseTarget := endLabel
	if s.Else != nil {
		falseTarget = elseLabel
	}
	g.emitf("  br i1 %s, label %%%s, label %%%s\n", cond, thenLabel, falseTarget)

	g.emitf("%s:\n", thenLabel)
	g.emitStatement(s.Then)
	if g.err != nil {
		return
	}
	g.emitf("  br label %%%s\n", endLabel)

	if s.Else != nil {
		g.emitf("%s:\n", elseLabel)
		g.emitStatement(s.Else)
		if g.err != nil {
			return
		}
		g.emitf("  br label %%%s\n", endLabel)
	}

	g.emitf("%s:\n", endLabel)
}

func (g *Generator) emitWhileStmt(s *ast.WhileStmt) {
	condLabel := g.newLabel()
	bodyLabel := g.newLabel()
	endLabel := g.newLabel()

	g.emitf("  br label %%%s\n", condLabel)
	g.emitf("%s:\n", condLabel)
	cond := g.emitCondition(s.Cond)
	if g.err != nil {
		return
	}
	g.emitf("  br i1 %s, label %%%s, label %%%s\n", cond, bodyLabel, endLabel)

	g.emitf("%s:\n", bodyLabel)
	g.emitStatement(s.Body)
	if g.err != nil {
		return
	}
	g.emitf("  br label %%%s\n", condLabel)

	g.emitf("%s:\n", endLabel)
}

func (g *Generator) emitForStmt(s *ast.ForStmt) {
	// One scope covers init+cond+body+post, mirroring the semantic
	// analyzer's ForStmt rule so an init-declared loop variable (or a
	// sibling loop reusing the same name) never leaks into or collides
	// with the enclosing block.
	g.pushScope()
	defer g.popScope()

	condLabel := g.newLabel()
	bodyLabel := g.newLabel()
	incrLabel := g.newLabel()
	endLabel := g.newLabel()

	switch init := s.Init.(type) {
	case *ast.VariableDecl:
		g.emitLocalVariable(init)
	case *ast.ExpressionStmt:
		if init.Expr != nil {
			g.emitExpression(init.Expr)
		}
	case nil:
		// no initializer
	}
	if g.err != nil {
		return
	}

	g.emitf("  br label %%%s\n", condLabel)
	g.emitf("%s:\n", condLabel)
	if s.Cond != nil {
		cond := g.emitCondition(s.Cond)
		if g.err != nil {
			return
		}
		g.emitf("  br i1 %s, label %%%s, label %%%s\n", cond, bodyLabel, endLabel)
	} else {
		// An absent condition always takes the body: an unconditional
		// branch from the cond block straight into the body block.
		g.emitf("  br label %%%s\n", bodyLabel)
	}

	g.emitf("%s:\n", bodyLabel)
	g.emitStatement(s.Body)
	if g.err != nil {
		return
	}
	g.emitf("  br label %%%s\n", incrLabel)

	g.emitf("%s:\n", incrLabel)
	if s.Post != nil {
		g.emitExpression(s.Post)
		if g.err != nil {
			return
		}
	}
	g.emitf("  br label %%%s\n", condLabel)

	g.emitf("%s:\n", endLabel)
}

func (g *Generator) emitReturnStmt(s *ast.ReturnStmt) {
	if s.Value == nil {
		g.emitf("  ret void\n")
		return
	}
	reg, _ := g.emitExpression(s.Value)
	if g.err != nil {
		return
	}
	g.emitf("  ret %s %s\n", g.currentReturnType.LLVMName(), reg)
}
