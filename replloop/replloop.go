/*
File    : lox-interpreter/replloop/replloop.go
*/

// Package replloop implements the interactive prompt, grounded on the
// teacher's repl/repl.go: a chzyer/readline line editor with history,
// a persistent evaluator across lines, and fatih/color for the prompt
// and error text. Unlike the teacher's REPL, this one resets the shared
// diagnostics.Reporter after every line (spec.md §6's "clears the
// per-line error latch") so one bad line never poisons the session.
package replloop

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/EdvardsF/lox-interpreter/ast"
	"github.com/EdvardsF/lox-interpreter/diagnostics"
	"github.com/EdvardsF/lox-interpreter/interpreter"
	"github.com/EdvardsF/lox-interpreter/run"
)

const prompt = "> "

// Run drives the read-eval-print loop until EOF (Ctrl-D) or an
// interrupt, printing a banner first. withExtras controls
// whether the supplemented len/str/num builtins are installed
// alongside clock(). The interpreter and its locals side-table persist
// across lines, so a variable declared on one line is visible on the
// next.
func Run(out io.Writer, withExtras bool) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          color.CyanString(prompt),
		HistoryFile:     "",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	report := diagnostics.NewReporter(out)
	interp := interpreter.New(report, make(map[ast.Expr]int), withExtras)

	fmt.Fprintln(out, color.GreenString("lox interpreter - press Ctrl-D to exit"))

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			fmt.Fprintln(out, "\nKeyboardInterrupt")
			return nil
		}
		if err == io.EOF {
			fmt.Fprintln(out, "\nExiting")
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		report.Reset()
		run.Source(line, report, interp)
		if report.HadError() {
			report.PrintErrors()
		}
	}
}
