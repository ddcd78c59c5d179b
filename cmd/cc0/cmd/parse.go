package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/cwbudde/cc0/internal/ast"
	"github.com/cwbudde/cc0/internal/ccerr"
	"github.com/cwbudde/cc0/internal/lexer"
	"github.com/cwbudde/cc0/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <input_file>",
	Short: "Parse a source file and print its AST",
	Long: `Parse a source file and print its Abstract Syntax Tree, without
running semantic analysis or code generation. Reports every syntax
error the parser resynchronizes past in one run.

Pass the inherited --json flag to print the AST as pretty-printed
JSON instead of the textual tree.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(c *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return ccerr.New(ccerr.StageIO, fmt.Sprintf("reading %s: %v", args[0], err))
	}

	prog, errs := parser.ParseProgram(lexer.New(string(src)))
	if len(errs) > 0 {
		fmt.Fprintln(os.Stderr, ccerr.FormatAll(ccerr.StageParse, errs))
		return fmt.Errorf("parsing failed")
	}

	jsonDump, _ := c.Flags().GetBool("json")
	if jsonDump {
		doc, err := ast.DumpJSON(prog)
		if err != nil {
			return err
		}
		os.Stdout.Write(pretty.Pretty([]byte(doc)))
		return nil
	}
	fmt.Println(prog.String())
	return nil
}
