package codegen

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/cwbudde/cc0/internal/ast"
	"github.com/cwbudde/cc0/internal/types"
)

// emitStringLiteral registers a fresh module-level private constant for
// e's decoded content and returns a getelementptr pointer to its first
// byte. The decoded bytes are NFC-normalized before escaping, so the
// emitted constant is stable regardless of the source file's own
// Unicode normalization form.
func (g *Generator) emitStringLiteral(e *ast.StringLiteral) (string, *types.TypeInfo) {
	decoded := decodeStringLiteral(e.Raw)
	normalized := norm.NFC.String(string(decoded))

	id := g.strCounter
	g.strCounter++
	name := fmt.Sprintf("@str.%d", id)
	escaped := escapeLLVMString(normalized)
	length := len(normalized) + 1 // + trailing NUL

	fmt.Fprintf(&g.stringsOut, "%s = private constant [%d x i8] c\"%s\\00\"\n", name, length, escaped)

	reg := g.newTemp()
	g.emitf("  %s = getelementptr inbounds [%d x i8], [%d x i8]* %s, i32 0, i32 0\n", reg, length, length, name)
	return reg, types.PointerTo(types.CharType)
}

// decodeStringLiteral strips the surrounding quotes from a lexer-
// produced string lexeme and resolves the two-character escapes the
// lexer preserves (\" \\ \n \t); any other backslash is passed through
// literally, mirroring the lexer's own "unrecognized escape" handling.
func decodeStringLiteral(raw string) []byte {
	if len(raw) < 2 {
		return nil
	}
	body := raw[1 : len(raw)-1]

	var out []byte
	for i := 0; i < len(body); i++ {
		ch := body[i]
		if ch == '\\' && i+1 < len(body) {
			switch body[i+1] {
			case '"':
				out = append(out, '"')
				i++
				continue
			case '\\':
				out = append(out, '\\')
				i++
				continue
			case 'n':
				out = append(out, '\n')
				i++
				continue
			case 't':
				out = append(out, '\t')
				i++
				continue
			}
		}
		out = append(out, ch)
	}
	return out
}

// escapeLLVMString renders s as the body of an LLVM `c"..."` constant:
// printable ASCII passes through; everything else (including the
// quote and backslash characters themselves) becomes a `\XX` two-digit
// uppercase hex escape.
func escapeLLVMString(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 0x20 && b < 0x7f && b != '"' && b != '\\' {
			sb.WriteByte(b)
			continue
		}
		fmt.Fprintf(&sb, "\\%02X", b)
	}
	return sb.String()
}
