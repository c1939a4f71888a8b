package codegen

import (
	"fmt"

	"github.com/subc-lang/subc/ast"
	"github.com/subc-lang/subc/token"
)

// setCC maps a comparison operator to the x86 SETcc condition suffix
// used to materialize its boolean result.
var setCC = map[token.Type]string{
	token.EQ:  "e",
	token.NEQ: "ne",
	token.LT:  "l",
	token.LE:  "le",
	token.GT:  "g",
	token.GE:  "ge",
}

// genExpr emits code for e, leaving its value in rax. Grounded
// instruction-by-instruction on
// original_source/src/codegen/expression.rs.
func (g *Generator) genExpr(ctx *Context, e ast.Expression) error {
	switch n := e.(type) {
	case *ast.IntegerLiteral:
		g.emitf("mov rax, %d", n.Value)
		return nil

	case *ast.Identifier:
		operand, err := ctx.resolve(n.Name)
		if err != nil {
			return err
		}
		g.emitf("mov rax, %s", operand)
		return nil

	case *ast.UnaryExpression:
		if err := g.genExpr(ctx, n.Operand); err != nil {
			return err
		}
		switch n.Op {
		case token.MINUS:
			g.emit("neg rax")
		case token.BIT_NOT:
			g.emit("not rax")
		case token.NOT:
			g.emit("cmp rax, 0")
			g.emit("mov rax, 0")
			g.emit("sete al")
		default:
			return fmt.Errorf("codegen: unreachable unary operator %s", n.Op)
		}
		return nil

	case *ast.IncDecExpression:
		return g.genIncDec(ctx, n)

	case *ast.AssignExpression:
		if err := g.genExpr(ctx, n.Value); err != nil {
			return err
		}
		operand, err := ctx.resolve(n.Target.Name)
		if err != nil {
			return err
		}
		g.emitf("mov %s, rax", operand)
		return nil

	case *ast.ConditionalExpression:
		return g.genConditional(ctx, n)

	case *ast.BinaryExpression:
		return g.genBinary(ctx, n)

	case *ast.CallExpression:
		return g.genCall(ctx, n)
	}
	return fmt.Errorf("codegen: unreachable expression type %T", e)
}

func (g *Generator) genIncDec(ctx *Context, n *ast.IncDecExpression) error {
	operand, err := ctx.resolve(n.Operand.Name)
	if err != nil {
		return err
	}
	op := "add"
	if n.Op == token.DEC {
		op = "sub"
	}
	if n.Prefix {
		g.emitf("%s %s, 1", op, operand)
		g.emitf("mov rax, %s", operand)
	} else {
		g.emitf("mov rax, %s", operand)
		g.emitf("%s %s, 1", op, operand)
	}
	return nil
}

func (g *Generator) genConditional(ctx *Context, n *ast.ConditionalExpression) error {
	altLabel := ctx.uniqueLabel()
	postLabel := ctx.uniqueLabel()

	if err := g.genExpr(ctx, n.Cond); err != nil {
		return err
	}
	g.emit("cmp rax, 0")
	g.emitf("je %s", altLabel)
	if err := g.genExpr(ctx, n.Then); err != nil {
		return err
	}
	g.emitf("jmp %s", postLabel)
	g.label(altLabel)
	if err := g.genExpr(ctx, n.Else); err != nil {
		return err
	}
	g.label(postLabel)
	return nil
}

func (g *Generator) genBinary(ctx *Context, n *ast.BinaryExpression) error {
	switch n.Op {
	case token.AND:
		return g.genLogicalAnd(ctx, n)
	case token.OR:
		return g.genLogicalOr(ctx, n)
	}

	// Every other binary operator evaluates left, pushes it, evaluates
	// right, then pops the left operand back into rax for combination
	// — preserving operand order for the non-commutative operators
	// (sub, div, and every comparison).
	if err := g.genExpr(ctx, n.Left); err != nil {
		return err
	}
	g.emit("push rax")
	if err := g.genExpr(ctx, n.Right); err != nil {
		return err
	}

	switch n.Op {
	case token.PLUS:
		g.emit("pop rcx")
		g.emit("add rax, rcx")
	case token.STAR:
		g.emit("pop rcx")
		g.emit("imul rax, rcx")
	case token.MINUS:
		g.emit("mov rcx, rax")
		g.emit("pop rax")
		g.emit("sub rax, rcx")
	case token.SLASH:
		g.emit("mov rcx, rax")
		g.emit("pop rax")
		g.emit("mov rdx, 0")
		g.emit("idiv rcx")
	case token.EQ, token.NEQ, token.LT, token.LE, token.GT, token.GE:
		g.emit("mov rcx, rax")
		g.emit("pop rax")
		g.emit("cmp rax, rcx")
		g.emit("mov rax, 0")
		g.emitf("set%s al", setCC[n.Op])
	default:
		return fmt.Errorf("codegen: unreachable binary operator %s", n.Op)
	}
	return nil
}

// genLogicalAnd short-circuits: if the left operand is already false
// (zero), skip evaluating the right operand entirely and the result is
// false.
func (g *Generator) genLogicalAnd(ctx *Context, n *ast.BinaryExpression) error {
	endLabel := ctx.uniqueLabel()
	secondLabel := ctx.uniqueLabel()

	if err := g.genExpr(ctx, n.Left); err != nil {
		return err
	}
	g.emit("cmp rax, 0")
	g.emitf("jne %s", secondLabel)
	g.emitf("jmp %s", endLabel)
	g.label(secondLabel)
	if err := g.genExpr(ctx, n.Right); err != nil {
		return err
	}
	g.emit("cmp rax, 0")
	g.emit("mov rax, 0")
	g.emit("setne al")
	g.label(endLabel)
	return nil
}

// genLogicalOr short-circuits: if the left operand is already true
// (non-zero), skip the right operand and the result is true.
func (g *Generator) genLogicalOr(ctx *Context, n *ast.BinaryExpression) error {
	endLabel := ctx.uniqueLabel()
	secondLabel := ctx.uniqueLabel()

	if err := g.genExpr(ctx, n.Left); err != nil {
		return err
	}
	g.emit("cmp rax, 0")
	g.emitf("je %s", secondLabel)
	g.emit("mov rax, 1")
	g.emitf("jmp %s", endLabel)
	g.label(secondLabel)
	if err := g.genExpr(ctx, n.Right); err != nil {
		return err
	}
	g.emit("cmp rax, 0")
	g.emit("mov rax, 0")
	g.emit("setne al")
	g.label(endLabel)
	return nil
}

// genCall implements the SysV AMD64 calling convention: the first six
// arguments load into the argument registers (saving and restoring
// whatever they held before, since an earlier argument's evaluation may
// itself call a function and clobber them), remaining arguments push
// onto the stack in reverse order.
func (g *Generator) genCall(ctx *Context, n *ast.CallExpression) error {
	regArgs := n.Args
	var stackArgs []ast.Expression
	if len(regArgs) > 6 {
		stackArgs = regArgs[6:]
		regArgs = regArgs[:6]
	}

	var saved []string
	for i, arg := range regArgs {
		reg := callerRegs[i]
		g.emitf("push %s", reg)
		saved = append(saved, reg)
		if err := g.genExpr(ctx, arg); err != nil {
			return err
		}
		g.emitf("mov %s, rax", reg)
	}

	for i := len(stackArgs) - 1; i >= 0; i-- {
		if err := g.genExpr(ctx, stackArgs[i]); err != nil {
			return err
		}
		g.emit("push rax")
	}

	g.emitf("call %s", n.Callee)
	if len(stackArgs) > 0 {
		g.emitf("add rsp, %d", 8*len(stackArgs))
	}

	for i := len(saved) - 1; i >= 0; i-- {
		g.emitf("pop %s", saved[i])
	}
	return nil
}
