package cmd

import (
	"fmt"
	"io"

	"github.com/tidwall/pretty"

	"github.com/cwbudde/cc0/internal/ast"
	"github.com/cwbudde/cc0/internal/lexer"
	"github.com/cwbudde/cc0/internal/semantic"
	"github.com/cwbudde/cc0/internal/token"
)

// dumpVerbose renders the token stream, AST, and symbol table for the
// -v flag. With jsonDump it also emits the AST as pretty-printed JSON;
// otherwise it uses the textual Program.String() form.
func dumpVerbose(w io.Writer, src string, prog *ast.Program, jsonDump bool) error {
	fmt.Fprintln(w, "=== tokens ===")
	dumpTokens(w, src)

	fmt.Fprintln(w, "=== ast ===")
	if jsonDump {
		doc, err := ast.DumpJSON(prog)
		if err != nil {
			return err
		}
		w.Write(pretty.Pretty([]byte(doc)))
	} else {
		fmt.Fprintln(w, prog.String())
	}

	fmt.Fprintln(w, "=== symbols ===")
	analyzer := semantic.NewAnalyzer()
	analyzer.Analyze(prog) // errors already reported by the caller; dump best-effort
	fmt.Fprint(w, analyzer.Global().Dump(0))

	return nil
}

func dumpTokens(w io.Writer, src string) {
	l := lexer.New(src)
	for {
		tok := l.NextToken()
		fmt.Fprintf(w, "  [%-9s] %q @%d:%d\n", tok.Kind, tok.Literal, tok.Pos.Line, tok.Pos.Column)
		if tok.Kind == token.EOF {
			break
		}
	}
}
