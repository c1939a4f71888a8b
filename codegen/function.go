package codegen

import "github.com/subc-lang/subc/ast"

// genFunction emits one function definition. Forward declarations (nil
// Body) emit nothing — the caller filters those out before calling
// this. labels is the one label generator shared across the whole
// program (see Generate); the variable map, by contrast, is rebuilt
// fresh per function by functionScope. Grounded on
// original_source/src/codegen/function.rs, including its dual main/_main
// label for macOS linkage, gated here on opts.MainAlias.
func (g *Generator) genFunction(labels *labelGenerator, fn *ast.Function, opts Options) error {
	g.emitf(".globl %s", fn.Name)
	if fn.Name == "main" && opts.MainAlias {
		g.emit(".globl _main")
	}
	g.label(fn.Name)
	if fn.Name == "main" && opts.MainAlias {
		g.label("_main")
	}

	g.emit("push rbp")
	g.emit("mov rbp, rsp")

	paramNames := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		paramNames[i] = p.Name
	}
	ctx := functionScope(labels, paramNames)

	for _, stmt := range fn.Body {
		if err := g.genStmt(ctx, stmt); err != nil {
			return err
		}
	}

	// Falling off the end of a function without an explicit return
	// still needs a valid epilogue; main in particular must return 0
	// in that case.
	g.emitEpilogue()
	g.emit("mov rax, 0")
	g.emit("ret")
	return nil
}

// emitEpilogue tears down the current stack frame, shared by every
// return statement and the default fall-through epilogue.
func (g *Generator) emitEpilogue() {
	g.emit("mov rsp, rbp")
	g.emit("pop rbp")
}
