package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/cc0/internal/ccerr"
	"github.com/cwbudde/cc0/internal/codegen"
	"github.com/cwbudde/cc0/internal/config"
	"github.com/cwbudde/cc0/internal/lexer"
	"github.com/cwbudde/cc0/internal/parser"
	"github.com/cwbudde/cc0/internal/semantic"
)

const defaultOutputFile = "output.ll"

var (
	optO0 bool
	optO1 bool
	optO2 bool
)

var compileCmd = &cobra.Command{
	Use:   "compile <input_file> [output_file]",
	Short: "Compile a source file to LLVM IR",
	Long: `Compile lexes, parses, semantically analyzes, and lowers <input_file>
to textual LLVM IR, writing it to [output_file] (default: output.ll).

The -O0/-O1/-O2 flags are accepted and threaded through to the code
generator but never change the emitted IR: there is no optimizer.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	registerCompileFlags(compileCmd)
}

// registerCompileFlags is shared between the root command (so a bare
// "cc0 file.c0" works) and the explicit "cc0 compile" subcommand.
func registerCompileFlags(c *cobra.Command) {
	c.Flags().BoolVar(&optO0, "O0", false, "no-op optimization flag")
	c.Flags().BoolVar(&optO1, "O1", false, "no-op optimization flag")
	c.Flags().BoolVar(&optO2, "O2", false, "no-op optimization flag")
}

func optLevel() string {
	switch {
	case optO2:
		return "O2"
	case optO1:
		return "O1"
	case optO0:
		return "O0"
	default:
		return ""
	}
}

func runCompile(c *cobra.Command, args []string) error {
	verbose, _ := c.Flags().GetBool("verbose")
	jsonDump, _ := c.Flags().GetBool("json")

	input := args[0]
	outFile := ""
	if len(args) > 1 {
		outFile = args[1]
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		return ccerr.New(ccerr.StageIO, fmt.Sprintf("reading %s: %v", config.FileName, err))
	}
	outFile, targetTriple, opt := cfg.ApplyDefaults(outFile, "", optLevel())
	if outFile == "" {
		outFile = defaultOutputFile
	}

	src, err := os.ReadFile(input)
	if err != nil {
		return ccerr.New(ccerr.StageIO, fmt.Sprintf("reading %s: %v", input, err))
	}

	l := lexer.New(string(src))
	prog, errs := parser.ParseProgram(l)
	if len(errs) > 0 {
		fmt.Fprintln(os.Stderr, ccerr.FormatAll(ccerr.StageParse, errs))
		return fmt.Errorf("compilation failed")
	}

	if err := semantic.NewAnalyzer().Analyze(prog); err != nil {
		fmt.Fprintln(os.Stderr, ccerr.New(ccerr.StageAnalyze, err.Error()))
		return fmt.Errorf("compilation failed")
	}

	if verbose {
		if err := dumpVerbose(os.Stdout, string(src), prog, jsonDump); err != nil {
			return ccerr.New(ccerr.StageIO, err.Error())
		}
	}

	ir, err := codegen.GenerateWithOptions(prog, codegen.Options{TargetTriple: targetTriple, OptLevel: opt})
	if err != nil {
		fmt.Fprintln(os.Stderr, ccerr.New(ccerr.StageCodegen, err.Error()))
		return fmt.Errorf("compilation failed")
	}

	if err := os.WriteFile(outFile, []byte(ir), 0o644); err != nil {
		return ccerr.New(ccerr.StageIO, fmt.Sprintf("writing %s: %v", outFile, err))
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "wrote %s\n", outFile)
	}
	return nil
}
