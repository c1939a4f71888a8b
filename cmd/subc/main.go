/*
Command subc is the command-line driver for the subc compiler: a
cobra-based CLI wrapping the lexer/parser/validate/codegen pipeline in
package compiler. It mirrors the teacher's (go-mix) CLI conventions —
fatih/color diagnostics, a REPL subcommand built on chzyer/readline —
adapted from an interpreter's shape to a batch compiler's: the build
subcommand compiles files, and the REPL is a convenience for trying
snippets rather than the program's primary mode.
*/
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// VERSION is the subc release version reported by `subc version`.
var VERSION = "v0.1.0"

var (
	redColor   = color.New(color.FgRed)
	cyanColor  = color.New(color.FgCyan)
	greenColor = color.New(color.FgGreen)
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var noColor bool

	root := &cobra.Command{
		Use:   "subc",
		Short: "subc compiles a small C-like language to x86-64 assembly",
		Long: `subc is a batch compiler for a small C-like imperative language subset.
It lexes, parses, and validates a source file, then emits Intel-syntax
x86-64 assembly suitable for GNU as and the host C toolchain's linker.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized diagnostics")
	root.AddCommand(newBuildCmd())
	root.AddCommand(newReplCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func printStageError(err error) {
	if stageErr, ok := err.(interface{ Stage() string }); ok {
		redColor.Fprintf(os.Stderr, "[%s error] %s\n", stageErr.Stage(), err.Error())
		return
	}
	redColor.Fprintf(os.Stderr, "error: %v\n", err)
}
