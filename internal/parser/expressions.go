package parser

import (
	"math"
	"strconv"

	"github.com/cwbudde/cc0/internal/ast"
	"github.com/cwbudde/cc0/internal/token"
)

var unaryOperators = map[string]bool{
	"!": true, "-": true, "&": true, "*": true,
}

// parseExpression is the single precedence-climbing entry point.
// Assignment is handled in the same loop as binary operators: it is
// only accepted when the caller's precedence floor admits it
// (precedence <= assignment), which is true only at statement-level
// and parenthesized-subexpression entry points, never while climbing
// into the right operand of a tighter-binding operator.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	left := p.parseUnary()
	if left == nil {
		return nil
	}

	for {
		if precedence <= assignment && p.curIs(token.Operator, "=") {
			ident, ok := left.(*ast.Identifier)
			if !ok {
				p.errorf("invalid assignment target %q", left.String())
				return left
			}
			tok := p.curToken
			p.advance()
			value := p.parseExpression(assignment)
			left = &ast.AssignmentExpr{Token: tok, Target: ident, Value: value}
			continue
		}

		opPrec, isOperator := binaryPrecedence[p.curToken.Literal]
		if p.curToken.Kind != token.Operator || !isOperator || opPrec <= precedence {
			break
		}
		tok := p.curToken
		op := tok.Literal
		p.advance()
		right := p.parseExpression(opPrec)
		left = &ast.BinaryExpr{Token: tok, Operator: op, Left: left, Right: right}
	}

	return left
}

func (p *Parser) parseUnary() ast.Expression {
	if p.curToken.Kind == token.Operator && unaryOperators[p.curToken.Literal] {
		tok := p.curToken
		op := tok.Literal
		p.advance()
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		return &ast.UnaryExpr{Token: tok, Operator: op, Operand: operand}
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() ast.Expression {
	switch {
	case p.curToken.Kind == token.Number:
		return p.parseNumberLiteral()
	case p.curToken.Kind == token.String:
		return p.parseStringLiteral()
	case p.curToken.Kind == token.Identifier:
		return p.parseIdentifierOrCall()
	case p.curIs(token.Punctuator, "("):
		p.advance()
		expr := p.parseExpression(lowest)
		if !p.expect(token.Punctuator, ")") {
			return nil
		}
		return expr
	default:
		p.errorf("unexpected token %q in expression", p.curToken.Literal)
		return nil
	}
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	tok := p.curToken
	value, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.errorf("invalid number literal %q: %v", tok.Literal, err)
		return nil
	}
	if value < math.MinInt32 || value > math.MaxInt32 {
		p.errorf("number literal %q out of range for int", tok.Literal)
		return nil
	}
	p.advance()
	return &ast.NumberLiteral{Token: tok, Lexeme: tok.Literal, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	tok := p.curToken
	p.advance()
	return &ast.StringLiteral{Token: tok, Raw: tok.Literal}
}

func (p *Parser) parseIdentifierOrCall() ast.Expression {
	tok := p.curToken
	name := tok.Literal
	p.advance()

	if !p.curIs(token.Punctuator, "(") {
		return &ast.Identifier{Token: tok, Name: name}
	}

	p.advance() // consume '('
	call := &ast.CallExpr{Token: tok, Callee: name}
	if !p.curIs(token.Punctuator, ")") {
		for {
			arg := p.parseExpression(lowest)
			if arg == nil {
				return nil
			}
			call.Args = append(call.Args, arg)
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
	return call
}
