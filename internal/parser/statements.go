package parser

import (
	"github.com/cwbudde/cc0/internal/ast"
	"github.com/cwbudde/cc0/internal/token"
)

// parseStatement dispatches on the current token to the matching
// Statement production. A leading type keyword is treated as a local
// VariableDecl; the language has no nested function definitions.
func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.curIs(token.Punctuator, "{"):
		return p.parseCompoundStmt()
	case p.curIs(token.Keyword, "if"):
		return p.parseIfStmt()
	case p.curIs(token.Keyword, "while"):
		return p.parseWhileStmt()
	case p.curIs(token.Keyword, "for"):
		return p.parseForStmt()
	case p.curIs(token.Keyword, "return"):
		return p.parseReturnStmt()
	case p.curToken.IsType():
		return p.parseLocalDeclaration()
	default:
		return p.parseExpressionStmt()
	}
}

func (p *Parser) parseCompoundStmt() *ast.CompoundStmt {
	tok := p.curToken
	if !p.expect(token.Punctuator, "{") {
		return nil
	}

	block := &ast.CompoundStmt{Token: tok}
	for !p.curIs(token.Punctuator, "}") && !p.atEOF() {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		} else {
			// Avoid looping forever on an unparseable token: skip it and
			// keep collecting whatever statements still parse.
			p.advance()
		}
	}
	if !p.expect(token.Punctuator, "}") {
		return nil
	}
	return block
}

func (p *Parser) parseIfStmt() *ast.IfStmt {
	tok := p.curToken
	p.advance() // consume 'if'

	if !p.expect(token.Punctuator, "(") {
		return nil
	}
	cond := p.parseExpression(lowest)
	if !p.expect(token.Punctuator, ")") {
		return nil
	}
	then := p.parseStatement()
	if then == nil {
		return nil
	}

	stmt := &ast.IfStmt{Token: tok, Cond: cond, Then: then}
	if p.curIs(token.Keyword, "else") {
		p.advance()
		stmt.Else = p.parseStatement()
	}
	return stmt
}

func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	tok := p.curToken
	p.advance() // consume 'while'

	if !p.expect(token.Punctuator, "(") {
		return nil
	}
	cond := p.parseExpression(lowest)
	if !p.expect(token.Punctuator, ")") {
		return nil
	}
	body := p.parseStatement()
	if body == nil {
		return nil
	}
	return &ast.WhileStmt{Token: tok, Cond: cond, Body: body}
}

func (p *Parser) parseForStmt() *ast.ForStmt {
	tok := p.curToken
	p.advance() // consume 'for'

	if !p.expect(token.Punctuator, "(") {
		return nil
	}

	stmt := &ast.ForStmt{Token: tok}

	if p.curIs(token.Punctuator, ";") {
		p.advance()
	} else if p.curToken.IsType() {
		stmt.Init = p.parseLocalDeclaration()
	} else {
		expr := p.parseExpression(lowest)
		stmt.Init = &ast.ExpressionStmt{Token: tok, Expr: expr}
		if !p.expect(token.Punctuator, ";") {
			return nil
		}
	}

	if !p.curIs(token.Punctuator, ";") {
		stmt.Cond = p.parseExpression(lowest)
	}
	if !p.expect(token.Punctuator, ";") {
		return nil
	}

	if !p.curIs(token.Punctuator, ")") {
		stmt.Post = p.parseExpression(lowest)
	}
	if !p.expect(token.Punctuator, ")") {
		return nil
	}

	stmt.Body = p.parseStatement()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	tok := p.curToken
	p.advance() // consume 'return'

	stmt := &ast.ReturnStmt{Token: tok}
	if !p.curIs(token.Punctuator, ";") {
		stmt.Value = p.parseExpression(lowest)
	}
	if !p.expect(token.Punctuator, ";") {
		return nil
	}
	return stmt
}

func (p *Parser) parseExpressionStmt() *ast.ExpressionStmt {
	tok := p.curToken

	if p.curIs(token.Punctuator, ";") {
		p.advance()
		return &ast.ExpressionStmt{Token: tok}
	}

	expr := p.parseExpression(lowest)
	if !p.expect(token.Punctuator, ";") {
		return nil
	}
	return &ast.ExpressionStmt{Token: tok, Expr: expr}
}
