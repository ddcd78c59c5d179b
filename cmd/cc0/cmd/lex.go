package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/cc0/internal/ccerr"
)

var lexCmd = &cobra.Command{
	Use:   "lex <input_file>",
	Short: "Tokenize a source file and print the resulting tokens",
	Long: `Tokenize (lex) a source file and print the resulting tokens, one
per line, without parsing or analyzing it. Useful for debugging the
lexer in isolation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return ccerr.New(ccerr.StageIO, fmt.Sprintf("reading %s: %v", args[0], err))
		}
		dumpTokens(os.Stdout, string(src))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
}
