package codegen

import (
	"fmt"

	"github.com/subc-lang/subc/ast"
	"github.com/subc-lang/subc/cerrors"
)

// genStmt emits code for s. Grounded on
// original_source/src/codegen/statement.rs and the state-machine view
// in SPEC_FULL.md/spec.md §4.5.
func (g *Generator) genStmt(ctx *Context, s ast.Statement) error {
	switch n := s.(type) {
	case *ast.DeclarationStatement:
		return g.genDeclaration(ctx, n)

	case *ast.ReturnStatement:
		if err := g.genExpr(ctx, n.Value); err != nil {
			return err
		}
		g.emitEpilogue()
		g.emit("ret")
		return nil

	case *ast.ExpressionStatement:
		if n.Expr == nil {
			return nil
		}
		return g.genExpr(ctx, n.Expr)

	case *ast.IfStatement:
		return g.genIf(ctx, n)

	case *ast.CompoundStatement:
		inner := ctx.innerScope()
		for _, stmt := range n.Statements {
			if err := g.genStmt(inner, stmt); err != nil {
				return err
			}
		}
		return nil

	case *ast.WhileStatement:
		return g.genWhile(ctx, n)

	case *ast.DoStatement:
		return g.genDo(ctx, n)

	case *ast.ForStatement:
		return g.genFor(ctx, n.Init, nil, n.Cond, n.Post, n.Body)

	case *ast.ForDeclStatement:
		return g.genFor(ctx, nil, n.Init, n.Cond, n.Post, n.Body)

	case *ast.BreakStatement:
		if ctx.loop == nil {
			return &cerrors.ValidationError{Msg: "break outside of a loop"}
		}
		g.emitf("jmp %s", ctx.loop.end)
		return nil

	case *ast.ContinueStatement:
		if ctx.loop == nil {
			return &cerrors.ValidationError{Msg: "continue outside of a loop"}
		}
		g.emitf("jmp %s", ctx.loop.cont)
		return nil
	}
	return fmt.Errorf("codegen: unreachable statement type %T", s)
}

// genDeclaration reserves stack space for a new local, initialized or
// not — see DESIGN.md's resolution of the uninitialized-declaration
// open question from spec.md §9: every declaration reserves its slot,
// so a later resolve in this or a nested scope never lands on a stale
// or out-of-frame address.
func (g *Generator) genDeclaration(ctx *Context, n *ast.DeclarationStatement) error {
	g.emit("sub rsp, 8")
	if err := ctx.declare(n.Name); err != nil {
		return err
	}
	if n.Init == nil {
		return nil
	}
	if err := g.genExpr(ctx, n.Init); err != nil {
		return err
	}
	operand, err := ctx.resolve(n.Name)
	if err != nil {
		return err
	}
	g.emitf("mov %s, rax", operand)
	return nil
}

func (g *Generator) genIf(ctx *Context, n *ast.IfStatement) error {
	if err := g.genExpr(ctx, n.Cond); err != nil {
		return err
	}
	g.emit("cmp rax, 0")

	if n.Else == nil {
		postLabel := ctx.uniqueLabel()
		g.emitf("je %s", postLabel)
		if err := g.genStmt(ctx, n.Then); err != nil {
			return err
		}
		g.label(postLabel)
		return nil
	}

	altLabel := ctx.uniqueLabel()
	postLabel := ctx.uniqueLabel()
	g.emitf("je %s", altLabel)
	if err := g.genStmt(ctx, n.Then); err != nil {
		return err
	}
	g.emitf("jmp %s", postLabel)
	g.label(altLabel)
	if err := g.genStmt(ctx, n.Else); err != nil {
		return err
	}
	g.label(postLabel)
	return nil
}

func (g *Generator) genWhile(ctx *Context, n *ast.WhileStatement) error {
	begLabel := ctx.uniqueLabel()
	endLabel := ctx.uniqueLabel()
	loopCtx := ctx.innerLoop(begLabel, endLabel)

	g.label(begLabel)
	if err := g.genExpr(loopCtx, n.Cond); err != nil {
		return err
	}
	g.emit("cmp rax, 0")
	g.emitf("je %s", endLabel)
	if err := g.genStmt(loopCtx, n.Body); err != nil {
		return err
	}
	g.emitf("jmp %s", begLabel)
	g.label(endLabel)
	return nil
}

func (g *Generator) genDo(ctx *Context, n *ast.DoStatement) error {
	begLabel := ctx.uniqueLabel()
	endLabel := ctx.uniqueLabel()
	loopCtx := ctx.innerLoop(begLabel, endLabel)

	g.label(begLabel)
	if err := g.genStmt(loopCtx, n.Body); err != nil {
		return err
	}
	if err := g.genExpr(loopCtx, n.Cond); err != nil {
		return err
	}
	g.emit("cmp rax, 0")
	g.emitf("jne %s", begLabel)
	g.label(endLabel)
	return nil
}

// genFor implements both For and ForDecl: exactly one of exprInit,
// declInit is non-nil. continue re-enters the post/step clause, not the
// condition, so the loop needs a distinct cont label from beg.
func (g *Generator) genFor(ctx *Context, exprInit ast.Expression, declInit *ast.DeclarationStatement, cond, post ast.Expression, body ast.Statement) error {
	scope := ctx.innerScope()

	if declInit != nil {
		if err := g.genDeclaration(scope, declInit); err != nil {
			return err
		}
	} else if exprInit != nil {
		if err := g.genExpr(scope, exprInit); err != nil {
			return err
		}
	}

	begLabel := scope.uniqueLabel()
	contLabel := scope.uniqueLabel()
	endLabel := scope.uniqueLabel()
	loopCtx := scope.innerLoop(contLabel, endLabel)

	g.label(begLabel)
	if cond != nil {
		if err := g.genExpr(loopCtx, cond); err != nil {
			return err
		}
	} else {
		g.emit("mov rax, 1")
	}
	g.emit("cmp rax, 0")
	g.emitf("je %s", endLabel)
	if err := g.genStmt(loopCtx, body); err != nil {
		return err
	}
	g.label(contLabel)
	if post != nil {
		if err := g.genExpr(loopCtx, post); err != nil {
			return err
		}
	}
	g.emitf("jmp %s", begLabel)
	g.label(endLabel)
	return nil
}
