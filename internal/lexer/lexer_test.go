package lexer

import (
	"testing"

	"github.com/cwbudde/cc0/internal/token"
)

func collectKinds(t *testing.T, input string) []token.Token {
	t.Helper()
	l := New(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks
}

func TestIdentifiersAndKeywords(t *testing.T) {
	input := "int x = foo(y);"
	tests := []struct {
		kind    token.Kind
		literal string
	}{
		{token.Keyword, "int"},
		{token.Identifier, "x"},
		{token.Operator, "="},
		{token.Identifier, "foo"},
		{token.Punctuator, "("},
		{token.Identifier, "y"},
		{token.Punctuator, ")"},
		{token.Punctuator, ";"},
		{token.EOF, ""},
	}

	toks := collectKinds(t, input)
	if len(toks) != len(tests) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(tests), toks)
	}
	for i, tt := range tests {
		if toks[i].Kind != tt.kind || toks[i].Literal != tt.literal {
			t.Errorf("token[%d] = (%s %q), want (%s %q)", i, toks[i].Kind, toks[i].Literal, tt.kind, tt.literal)
		}
	}
}

func TestMaximalMunch(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"==", []string{"=="}},
		{"=", []string{"="}},
		{"!=", []string{"!="}},
		{"!", []string{"!"}},
		{"<=", []string{"<="}},
		{"<", []string{"<"}},
		{">=", []string{">="}},
		{">", []string{">"}},
		{"++", []string{"++"}},
		{"+", []string{"+"}},
		{"--", []string{"--"}},
		{"-", []string{"-"}},
		{"&&", []string{"&&"}},
		{"&", []string{"&"}},
		{"||", []string{"||"}},
		{"|", []string{"|"}},
		{"* /", []string{"*", "/"}},
	}

	for _, tt := range tests {
		toks := collectKinds(t, tt.input)
		toks = toks[:len(toks)-1] // drop EOF
		if len(toks) != len(tt.want) {
			t.Fatalf("input %q: got %d tokens %+v, want %v", tt.input, len(toks), toks, tt.want)
		}
		for i, lit := range tt.want {
			if toks[i].Literal != lit {
				t.Errorf("input %q: token[%d] = %q, want %q", tt.input, i, toks[i].Literal, lit)
			}
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	toks := collectKinds(t, "0 42 1234567890")
	want := []string{"0", "42", "1234567890"}
	for i, lit := range want {
		if toks[i].Kind != token.Number || toks[i].Literal != lit {
			t.Errorf("token[%d] = (%s %q), want Number %q", i, toks[i].Kind, toks[i].Literal, lit)
		}
	}
}

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"hello"`, `"hello"`},
		{`"a\"b"`, `"a\"b"`},
		{`"line\nbreak"`, `"line\nbreak"`},
		{`"back\\slash"`, `"back\\slash"`},
	}
	for _, tt := range tests {
		toks := collectKinds(t, tt.input)
		if toks[0].Kind != token.String || toks[0].Literal != tt.want {
			t.Errorf("input %q: got (%s %q), want String %q", tt.input, toks[0].Kind, toks[0].Literal, tt.want)
		}
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	input := "int x; // trailing comment\nint y; /* block\ncomment */ int z;"
	toks := collectKinds(t, input)
	var idents []string
	for _, tok := range toks {
		if tok.Kind == token.Identifier {
			idents = append(idents, tok.Literal)
		}
	}
	want := []string{"x", "y", "z"}
	if len(idents) != len(want) {
		t.Fatalf("got identifiers %v, want %v", idents, want)
	}
	for i, id := range want {
		if idents[i] != id {
			t.Errorf("identifier[%d] = %q, want %q", i, idents[i], id)
		}
	}
}

func TestLexerTotalityAtEOF(t *testing.T) {
	l := New("int")
	for i := 0; i < 5; i++ {
		l.NextToken()
	}
	for i := 0; i < 10; i++ {
		if tok := l.NextToken(); tok.Kind != token.EOF {
			t.Fatalf("call %d after exhaustion: got %s, want EOF forever", i, tok.Kind)
		}
	}
}

func TestUnknownCharacterIsSingleByteOperator(t *testing.T) {
	toks := collectKinds(t, "@")
	if toks[0].Kind != token.Operator || toks[0].Literal != "@" {
		t.Errorf("got (%s %q), want Operator \"@\"", toks[0].Kind, toks[0].Literal)
	}
}
