/*
Package codegen lowers a validated ast.Program into Intel-syntax x86-64
assembly text. It operates by depth-first traversal: every node writes
its instructions and leaves its value in rax, with no register
allocation — intermediates cross statement and expression boundaries
through the stack or through named stack slots tracked by Context.

The package is grounded throughout on original_source/src/codegen/ (the
final, most-evolved snapshot of the Rust reference's code generator —
context/mod.rs, context/variable.rs, context/label.rs, function.rs,
statement.rs, expression.rs), reimplemented with Go's explicit error
returns in place of Rust's Result-returning generate methods.
*/
package codegen

import (
	"fmt"

	"github.com/subc-lang/subc/ast"
)

// Generator accumulates emitted assembly text line by line.
type Generator struct {
	out []byte
}

// New returns an empty Generator.
func New() *Generator {
	return &Generator{}
}

func (g *Generator) emit(line string) {
	g.out = append(g.out, line...)
	g.out = append(g.out, '\n')
}

func (g *Generator) emitf(format string, args ...any) {
	g.emit(fmt.Sprintf(format, args...))
}

func (g *Generator) label(name string) {
	g.out = append(g.out, name...)
	g.out = append(g.out, ':', '\n')
}

// Generate lowers prog into a complete assembly text stream: the
// `.intel_syntax noprefix` directive followed by one emission per
// function definition, in source order. Forward declarations (functions
// with no body) contribute nothing to the output.
//
// One labelGenerator is constructed here and threaded through every
// function so labels stay unique across the whole program, not just
// within one function (original_source/src/codegen/mod.rs constructs
// its LabelGenerator the same way, once per codegen() call).
func Generate(prog *ast.Program, opts Options) (string, error) {
	g := New()
	g.emit(".intel_syntax noprefix")

	labels := newLabelGenerator()
	for _, fn := range prog.Functions {
		if fn.Body == nil {
			continue
		}
		if err := g.genFunction(labels, fn, opts); err != nil {
			return "", err
		}
	}
	return string(g.out), nil
}
