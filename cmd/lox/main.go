/*
File    : lox-interpreter/cmd/lox/main.go
*/

// Command lox is the interpreter's entrypoint, grounded on the
// teacher's main package (a thin argv switch over run/tokenize/parse
// modes) but restructured as spf13/cobra subcommands, the CLI framework
// used by the opal-lang-opal example's runtime/cli harness. Subcommands:
// run, tokens, and ast; with no subcommand and no argument the root
// command starts the REPL (there is no separate repl subcommand).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/EdvardsF/lox-interpreter/ast"
	"github.com/EdvardsF/lox-interpreter/diagnostics"
	"github.com/EdvardsF/lox-interpreter/interpreter"
	"github.com/EdvardsF/lox-interpreter/replloop"
	"github.com/EdvardsF/lox-interpreter/run"
)

// version is set at build time in the teacher's own main package via
// -ldflags; hardcoded here since this exercise never invokes the
// toolchain that would inject it.
var version = "dev"

// Exit codes, per spec.md §6.
const (
	exitOK            = 0
	exitUsage         = 64
	exitCompileError  = 65
	exitRuntimeError  = 70
	exitCannotOpenSrc = 1
)

var withExtras bool

func main() {
	os.Exit(run_())
}

func run_() int {
	exitCode := exitOK

	root := &cobra.Command{
		Use:     "lox [script]",
		Short:   "A tree-walking interpreter for Lox",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		// Errors are printed once, by run_ below, not also by cobra.
		SilenceErrors: true,
		// Bare `lox <file>` is the documented spec.md §6 shorthand for
		// `lox run <file>`; no argument falls through to the REPL.
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runFile(args[0], &exitCode)
			}
			return replloop.Run(os.Stdout, withExtras)
		},
	}
	root.PersistentFlags().BoolVar(&withExtras, "extras", false, "install the supplemented len/str/num builtins")

	root.AddCommand(
		runCmd(&exitCode),
		tokensCmd(&exitCode),
		astCmd(&exitCode),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if exitCode == exitOK {
			exitCode = exitUsage
		}
	}
	return exitCode
}

// runFile reads, compiles, and executes one Lox source file, setting
// *exitCode per spec.md §6's compile/runtime-error distinction.
func runFile(path string, exitCode *int) error {
	src, err := os.ReadFile(path)
	if err != nil {
		*exitCode = exitCannotOpenSrc
		return err
	}

	report := diagnostics.NewReporter(os.Stderr)
	interp := interpreter.New(report, make(map[ast.Expr]int), withExtras)

	status := run.Source(string(src), report, interp)
	if report.HadError() {
		report.PrintErrors()
	}
	switch status {
	case run.StatusCompileError:
		*exitCode = exitCompileError
	case run.StatusRuntimeError:
		*exitCode = exitRuntimeError
	}
	return nil
}

func runCmd(exitCode *int) *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Run a Lox source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0], exitCode)
		},
	}
}

func tokensCmd(exitCode *int) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream for a Lox source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				*exitCode = exitCannotOpenSrc
				return err
			}
			report := diagnostics.NewReporter(os.Stderr)
			for _, tok := range run.Scan(string(src), report) {
				fmt.Println(tok.String())
			}
			if report.HadError() {
				report.PrintErrors()
				*exitCode = exitCompileError
			}
			return nil
		},
	}
}

func astCmd(exitCode *int) *cobra.Command {
	return &cobra.Command{
		Use:   "ast <file>",
		Short: "Print a parenthesized dump of a Lox file's syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				*exitCode = exitCannotOpenSrc
				return err
			}
			report := diagnostics.NewReporter(os.Stderr)
			stmts := run.ParseOnly(string(src), report)
			if report.HadError() {
				report.PrintErrors()
				*exitCode = exitCompileError
				return nil
			}
			fmt.Print(ast.Print(stmts))
			return nil
		},
	}
}
