/*
Package validate performs subc's two whole-program semantic checks
before code generation is attempted: signature consistency across
repeated declarations/definitions of the same function, and call
resolution against the signatures seen so far. Both are grounded
directly on original_source/src/validation.rs's validate_all_expr
walk — the same incremental-map construction and the same statement
and expression traversal order, translated from Rust pattern matching
into Go type switches.
*/
package validate

import (
	"fmt"

	"github.com/subc-lang/subc/ast"
	"github.com/subc-lang/subc/cerrors"
)

// Validate runs both whole-program checks over prog in source order,
// stopping at the first violation (fail-fast, per spec).
func Validate(prog *ast.Program) error {
	sigs := map[string][]ast.Type{}

	for _, fn := range prog.Functions {
		paramTypes := make([]ast.Type, len(fn.Params))
		for i, p := range fn.Params {
			paramTypes[i] = p.Type
		}

		if existing, ok := sigs[fn.Name]; ok {
			if !sameTypes(existing, paramTypes) {
				return &cerrors.ValidationError{
					Msg: fmt.Sprintf("Conflicting definitions for function %s", fn.Name),
				}
			}
		}
		sigs[fn.Name] = paramTypes

		if fn.Body != nil {
			if err := validateStatements(fn.Body, sigs); err != nil {
				return err
			}
		}
	}
	return nil
}

func sameTypes(a, b []ast.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// validateStatements walks every statement in stmts, recursing into
// nested bodies (both branches of If, the loop body of every loop
// construct, and both children of ForDecl) and checking every
// expression reachable from it.
func validateStatements(stmts []ast.Statement, sigs map[string][]ast.Type) error {
	for _, s := range stmts {
		if err := validateStatement(s, sigs); err != nil {
			return err
		}
	}
	return nil
}

func validateStatement(s ast.Statement, sigs map[string][]ast.Type) error {
	switch n := s.(type) {
	case *ast.DeclarationStatement:
		if n.Init != nil {
			return validateExpr(n.Init, sigs)
		}
	case *ast.ReturnStatement:
		return validateExpr(n.Value, sigs)
	case *ast.ExpressionStatement:
		if n.Expr != nil {
			return validateExpr(n.Expr, sigs)
		}
	case *ast.IfStatement:
		if err := validateExpr(n.Cond, sigs); err != nil {
			return err
		}
		if err := validateStatement(n.Then, sigs); err != nil {
			return err
		}
		if n.Else != nil {
			return validateStatement(n.Else, sigs)
		}
	case *ast.CompoundStatement:
		return validateStatements(n.Statements, sigs)
	case *ast.ForStatement:
		if n.Init != nil {
			if err := validateExpr(n.Init, sigs); err != nil {
				return err
			}
		}
		if n.Cond != nil {
			if err := validateExpr(n.Cond, sigs); err != nil {
				return err
			}
		}
		if n.Post != nil {
			if err := validateExpr(n.Post, sigs); err != nil {
				return err
			}
		}
		return validateStatement(n.Body, sigs)
	case *ast.ForDeclStatement:
		if n.Init.Init != nil {
			if err := validateExpr(n.Init.Init, sigs); err != nil {
				return err
			}
		}
		if n.Cond != nil {
			if err := validateExpr(n.Cond, sigs); err != nil {
				return err
			}
		}
		if n.Post != nil {
			if err := validateExpr(n.Post, sigs); err != nil {
				return err
			}
		}
		return validateStatement(n.Body, sigs)
	case *ast.WhileStatement:
		if err := validateExpr(n.Cond, sigs); err != nil {
			return err
		}
		return validateStatement(n.Body, sigs)
	case *ast.DoStatement:
		if err := validateStatement(n.Body, sigs); err != nil {
			return err
		}
		return validateExpr(n.Cond, sigs)
	case *ast.BreakStatement, *ast.ContinueStatement:
		// no expressions to walk
	}
	return nil
}

// validateExpr recurses into every expression kind that contains
// sub-expressions, checking any FunCall it finds against sigs.
func validateExpr(e ast.Expression, sigs map[string][]ast.Type) error {
	switch n := e.(type) {
	case *ast.Identifier, *ast.IntegerLiteral:
		// leaves
	case *ast.UnaryExpression:
		return validateExpr(n.Operand, sigs)
	case *ast.IncDecExpression:
		// operand is always a bare identifier
	case *ast.BinaryExpression:
		if err := validateExpr(n.Left, sigs); err != nil {
			return err
		}
		return validateExpr(n.Right, sigs)
	case *ast.AssignExpression:
		return validateExpr(n.Value, sigs)
	case *ast.ConditionalExpression:
		if err := validateExpr(n.Cond, sigs); err != nil {
			return err
		}
		if err := validateExpr(n.Then, sigs); err != nil {
			return err
		}
		return validateExpr(n.Else, sigs)
	case *ast.CallExpression:
		params, ok := sigs[n.Callee]
		if !ok || len(params) != len(n.Args) {
			return &cerrors.ValidationError{
				Msg: fmt.Sprintf("Undeclared function %s", n.Callee),
			}
		}
		for _, arg := range n.Args {
			if err := validateExpr(arg, sigs); err != nil {
				return err
			}
		}
	}
	return nil
}
