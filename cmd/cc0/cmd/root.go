package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "cc0",
	Short: "Ahead-of-time compiler for a restricted C-like subset",
	Long: `cc0 compiles a restricted C-like source language (int/char/void,
pointers, arrays, a nominal struct registry) straight to textual LLVM
IR: lex -> parse -> semantic analysis -> code generation, no separate
compilation, no optimizer.

Running cc0 with a bare input file is shorthand for "cc0 compile":

  cc0 program.c0
  cc0 program.c0 program.ll -v`,
	Version: Version,
	Args:    cobra.ArbitraryArgs,
	RunE: func(c *cobra.Command, args []string) error {
		if len(args) == 0 {
			return c.Help()
		}
		return runCompile(c, args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output: dump tokens, AST, and symbol table")
	rootCmd.PersistentFlags().Bool("json", false, "with -v, dump the AST as JSON instead of text")
	registerCompileFlags(rootCmd)
}
