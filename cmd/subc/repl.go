package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/subc-lang/subc/codegen"
	"github.com/subc-lang/subc/compiler"
)

const replPrompt = "subc> "

// newReplCmd adapts the teacher's repl.Repl (an interpreter's
// read-eval-print loop) into a read-compile-print loop: each line is
// wrapped in `int main() { <line> return 0; }` and run through the full compile
// pipeline, printing the resulting assembly or the stage error. This
// is a convenience for trying expressions and statements interactively,
// not the program's primary mode — unlike the teacher, where the REPL
// is the default entry point.
func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively compile single statements wrapped in a throwaway main",
		RunE: func(cmd *cobra.Command, args []string) error {
			runRepl()
			return nil
		},
	}
}

func runRepl() {
	cyanColor.Println("subc repl — enter a statement, or .exit to quit")

	rl, err := readline.New(replPrompt)
	if err != nil {
		redColor.Printf("could not start readline: %v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			cyanColor.Println("Good bye!")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			cyanColor.Println("Good bye!")
			return
		}
		rl.SaveHistory(line)

		src := wrapStatement(line)
		asm, err := compiler.CompileSource(src, codegen.DefaultOptions())
		if err != nil {
			printStageError(err)
			continue
		}
		greenColor.Println(asm)
	}
}

// wrapStatement turns a bare statement into a one-function program so
// the full pipeline (which only ever compiles whole programs) can
// accept it.
func wrapStatement(line string) string {
	if !strings.HasSuffix(line, ";") && !strings.HasSuffix(line, "}") {
		line += ";"
	}
	return "int main() { " + line + " return 0; }"
}
