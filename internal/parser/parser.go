// Package parser implements a recursive-descent parser with precedence
// climbing over the token stream produced by the lexer. It builds a
// tagged ast.Program and records syntax errors on a single error buffer,
// resynchronizing at top-level type keywords so a run can surface more
// than one syntax error.
package parser

import (
	"fmt"

	"github.com/cwbudde/cc0/internal/ast"
	"github.com/cwbudde/cc0/internal/lexer"
	"github.com/cwbudde/cc0/internal/token"
)

// Precedence levels, lowest to highest.
const (
	_ int = iota
	lowest
	assignment  // =
	equality    // == !=
	comparison  // < <= > >=
	additive    // + -
	multiplicative // * /
	unary       // !x, -x, &x, *x
)

var binaryPrecedence = map[string]int{
	"==": equality, "!=": equality,
	"<": comparison, "<=": comparison, ">": comparison, ">=": comparison,
	"+": additive, "-": additive,
	"*": multiplicative, "/": multiplicative,
}

// Parser holds one token of lookahead (peekToken) plus the previous
// token (prevToken), which advance records; no production currently
// reads prevToken.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token
	prevToken token.Token

	errors []string
}

// New creates a Parser over the given lexer and primes the two-token
// lookahead window.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.advance()
	p.advance()
	return p
}

// Errors returns the syntax errors accumulated so far.
func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *Parser) advance() {
	p.prevToken = p.curToken
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curIs(kind token.Kind, literal string) bool {
	return p.curToken.Is(kind, literal)
}

func (p *Parser) peekIs(kind token.Kind, literal string) bool {
	return p.peekToken.Is(kind, literal)
}

// expect advances past the current token if it matches, otherwise
// records a syntax error and leaves the cursor where it is so the
// caller's unwind can let the enclosing loop discover the mismatch.
func (p *Parser) expect(kind token.Kind, literal string) bool {
	if p.curIs(kind, literal) {
		p.advance()
		return true
	}
	p.errorf("expected %q, got %q", literal, p.curToken.Literal)
	return false
}

// atEOF reports whether the cursor has reached end of stream.
func (p *Parser) atEOF() bool {
	return p.curToken.Kind == token.EOF
}

// ParseProgram parses the whole token stream into a Program,
// resynchronizing at the next top-level type keyword after any
// declaration-level error so multiple syntax errors can be reported in
// one run.
func ParseProgram(l *lexer.Lexer) (*ast.Program, []string) {
	p := New(l)
	prog := &ast.Program{}

	for !p.atEOF() {
		before := len(p.errors)
		decl := p.parseTopLevelDeclaration()
		if decl != nil {
			prog.Declarations = append(prog.Declarations, decl)
			continue
		}
		if len(p.errors) == before {
			// Statement fallback produced nothing and recorded nothing;
			// avoid spinning forever on an unconsumed token.
			p.errorf("unexpected token %q at top level", p.curToken.Literal)
		}
		p.resynchronize()
	}

	return prog, p.errors
}

// resynchronize discards tokens until the next top-level type keyword
// (int | void | char) or EOF.
func (p *Parser) resynchronize() {
	for !p.atEOF() && !p.curToken.IsType() {
		p.advance()
	}
}
