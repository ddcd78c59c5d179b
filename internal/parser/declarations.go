package parser

import (
	"github.com/cwbudde/cc0/internal/ast"
	"github.com/cwbudde/cc0/internal/token"
)

// parseTopLevelDeclaration parses one Program member. A Program contains
// only declarations (the AST invariant from the data model), so the
// grammar's "Statement -- fallback" alternative for Declaration is
// honored only as a recovery aid: when the head is not a type keyword,
// the parser still attempts a statement parse so it consumes tokens
// structurally instead of resyncing byte-by-byte, but the result is
// discarded and a syntax error is recorded — it never becomes a
// Declaration in the Program.
func (p *Parser) parseTopLevelDeclaration() ast.Declaration {
	if p.curToken.IsType() {
		return p.parseDeclaration()
	}

	tok := p.curToken
	_ = p.parseStatement()
	p.errorf("unexpected statement at top level, starting with %q", tok.Literal)
	return nil
}

// parseDeclaration parses `TypeKW Identifier FunctionTail` or
// `TypeKW Identifier VariableTail`, distinguishing on whether the token
// after the name is '('.
func (p *Parser) parseDeclaration() ast.Declaration {
	typeTok := p.curToken
	typeName := p.curToken.Literal
	p.advance() // consume type keyword

	if p.curToken.Kind != token.Identifier {
		p.errorf("expected identifier after type %q, got %q", typeName, p.curToken.Literal)
		return nil
	}
	name := p.curToken.Literal
	p.advance() // consume identifier

	if p.curIs(token.Punctuator, "(") {
		return p.parseFunctionTail(typeTok, typeName, name)
	}
	return p.parseVariableTail(typeTok, typeName, name)
}

// parseLocalDeclaration parses a variable declaration appearing inside a
// CompoundStmt or a ForStmt initializer. The language does not support
// nested function definitions, so only the VariableTail alternative
// applies here.
func (p *Parser) parseLocalDeclaration() *ast.VariableDecl {
	typeTok := p.curToken
	typeName := p.curToken.Literal
	p.advance()

	if p.curToken.Kind != token.Identifier {
		p.errorf("expected identifier after type %q, got %q", typeName, p.curToken.Literal)
		return nil
	}
	name := p.curToken.Literal
	p.advance()

	if p.curIs(token.Punctuator, "(") {
		p.errorf("nested function definitions are not supported")
		return nil
	}
	return p.parseVariableTail(typeTok, typeName, name)
}

func (p *Parser) parseFunctionTail(typeTok token.Token, typeName, name string) *ast.FunctionDecl {
	p.advance() // consume '('

	var params []ast.Param
	if !p.curIs(token.Punctuator, ")") {
		for {
			param, ok := p.parseParam()
			if !ok {
				return nil
			}
			params = append(params, param)
			if p.curIs(token.Punctuator, ",") {
				p.advance()
				continue
			}
			break
		}
	}
	if !p.expect(token.Punctuator, ")") {
		return nil
	}

	decl := &ast.FunctionDecl{Token: typeTok, ReturnType: typeName, Name: name, Params: params}

	if p.curIs(token.Punctuator, ";") {
		p.advance()
		return decl // prototype, no body
	}
	if !p.curIs(token.Punctuator, "{") {
		p.errorf("expected ';' or '{' after function parameter list, got %q", p.curToken.Literal)
		return nil
	}
	body := p.parseCompoundStmt()
	if body == nil {
		return nil
	}
	decl.Body = body
	return decl
}

func (p *Parser) parseParam() (ast.Param, bool) {
	if !p.curToken.IsType() {
		p.errorf("expected parameter type, got %q", p.curToken.Literal)
		return ast.Param{}, false
	}
	typeName := p.curToken.Literal
	p.advance()
	if p.curToken.Kind != token.Identifier {
		p.errorf("expected parameter name after type %q, got %q", typeName, p.curToken.Literal)
		return ast.Param{}, false
	}
	name := p.curToken.Literal
	p.advance()
	return ast.Param{Type: typeName, Name: name}, true
}

func (p *Parser) parseVariableTail(typeTok token.Token, typeName, name string) *ast.VariableDecl {
	decl := &ast.VariableDecl{Token: typeTok, Type: typeName, Name: name}

	if p.curIs(token.Operator, "=") {
		p.advance()
		decl.Init = p.parseExpression(lowest)
	}
	if !p.expect(token.Punctuator, ";") {
		return nil
	}
	return decl
}
