package parser

import (
	"github.com/subc-lang/subc/ast"
	"github.com/subc-lang/subc/token"
)

// parseExpression enters the precedence cascade at its lowest-binding
// level, assignment.
func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseAssignment()
}

// compoundOps maps a compound-assignment token to the binary operator
// it desugars into: `id += e` becomes `Assign(id, Add(id, e))`.
var compoundOps = map[token.Type]token.Type{
	token.PLUS_EQ:  token.PLUS,
	token.MINUS_EQ: token.MINUS,
	token.STAR_EQ:  token.STAR,
	token.SLASH_EQ: token.SLASH,
}

// parseAssignment handles level 1. Disambiguating an assignment from a
// fallthrough to the conditional level needs two tokens of lookahead:
// an IDENT followed directly by an assignment operator begins an
// assignment. Assignment (and the conditional it falls through to) is
// right-associative, so the right-hand side is itself parsed starting
// back at parseAssignment.
func (p *Parser) parseAssignment() (ast.Expression, error) {
	if p.at(token.IDENT) {
		if op := p.peekAt(1).Type; op == token.ASSIGN || isCompoundAssign(op) {
			nameTok := p.advance()
			opTok := p.advance()
			target := &ast.Identifier{Name: nameTok.Literal, Pos: nameTok.Pos}

			rhs, err := p.parseAssignment()
			if err != nil {
				return nil, err
			}
			if opTok.Type != token.ASSIGN {
				rhs = &ast.BinaryExpression{
					Op:    compoundOps[opTok.Type],
					Left:  &ast.Identifier{Name: target.Name, Pos: target.Pos},
					Right: rhs,
					Pos:   opTok.Pos,
				}
			}
			return &ast.AssignExpression{Target: target, Value: rhs, Pos: nameTok.Pos}, nil
		}
	}
	return p.parseConditional()
}

func isCompoundAssign(t token.Type) bool {
	_, ok := compoundOps[t]
	return ok
}

// parseConditional handles level 2, the ternary `cond ? then : else`.
// It is right-recursive on the else branch (which itself starts back
// at assignment), so `a ? b : c ? d : e` parses as
// `a ? b : (c ? d : e)`.
func (p *Parser) parseConditional() (ast.Expression, error) {
	cond, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}
	if !p.at(token.QUESTION) {
		return cond, nil
	}
	pos := p.advance().Pos
	then, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	els, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	return &ast.ConditionalExpression{Cond: cond, Then: then, Else: els, Pos: pos}, nil
}

// parseLogicalOr handles level 3, left-associative `||`.
func (p *Parser) parseLogicalOr() (ast.Expression, error) {
	return p.parseLeftAssocBinary(token.OR, p.parseLogicalAnd)
}

// parseLogicalAnd handles level 4, left-associative `&&`.
func (p *Parser) parseLogicalAnd() (ast.Expression, error) {
	return p.parseLeftAssocBinary(token.AND, p.parseEquality)
}

// parseEquality handles level 5: `==`, `!=`.
func (p *Parser) parseEquality() (ast.Expression, error) {
	return p.parseLeftAssocBinary2(p.parseRelational, token.EQ, token.NEQ)
}

// parseRelational handles level 6: `<`, `<=`, `>`, `>=`.
func (p *Parser) parseRelational() (ast.Expression, error) {
	return p.parseLeftAssocBinary2(p.parseAdditive, token.LT, token.LE, token.GT, token.GE)
}

// parseAdditive handles level 7: `+`, `-`.
func (p *Parser) parseAdditive() (ast.Expression, error) {
	return p.parseLeftAssocBinary2(p.parseMultiplicative, token.PLUS, token.MINUS)
}

// parseMultiplicative handles level 8: `*`, `/`.
func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	return p.parseLeftAssocBinary2(p.parseUnary, token.STAR, token.SLASH)
}

// parseLeftAssocBinary folds a single left-associative binary operator
// over a sub-production, used by the two levels (||, &&) that only
// ever test one operator.
func (p *Parser) parseLeftAssocBinary(op token.Type, next func() (ast.Expression, error)) (ast.Expression, error) {
	return p.parseLeftAssocBinary2(next, op)
}

// parseLeftAssocBinary2 folds any of ops, left to right, over repeated
// applications of next — the shared shape of every left-associative
// precedence level from equality down through multiplicative.
func (p *Parser) parseLeftAssocBinary2(next func() (ast.Expression, error), ops ...token.Type) (ast.Expression, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for matchesAny(p.cur().Type, ops) {
		opTok := p.advance()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Op: opTok.Type, Left: left, Right: right, Pos: opTok.Pos}
	}
	return left, nil
}

func matchesAny(t token.Type, ops []token.Type) bool {
	for _, o := range ops {
		if t == o {
			return true
		}
	}
	return false
}

// parseUnary handles level 9: prefix `-`, `~`, `!`, prefix `++id` /
// `--id`, and falls through to postfix handling of `id++` / `id--` at
// the bottom of the cascade via parsePostfix.
func (p *Parser) parseUnary() (ast.Expression, error) {
	switch p.cur().Type {
	case token.MINUS, token.BIT_NOT, token.NOT:
		opTok := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{Op: opTok.Type, Operand: operand, Pos: opTok.Pos}, nil

	case token.INC, token.DEC:
		opTok := p.advance()
		idTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		id := &ast.Identifier{Name: idTok.Literal, Pos: idTok.Pos}
		return &ast.IncDecExpression{Op: opTok.Type, Prefix: true, Operand: id, Pos: opTok.Pos}, nil
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary expression followed by an optional
// trailing `++` or `--`.
func (p *Parser) parsePostfix() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur().Type == token.INC || p.cur().Type == token.DEC {
		id, ok := expr.(*ast.Identifier)
		if !ok {
			return nil, p.errorf("postfix %s requires an identifier operand", p.cur().Type)
		}
		opTok := p.advance()
		return &ast.IncDecExpression{Op: opTok.Type, Prefix: false, Operand: id, Pos: opTok.Pos}, nil
	}
	return expr, nil
}

// parsePrimary handles level 10: integer literals, parenthesized
// expressions, identifiers, and function calls.
func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch p.cur().Type {
	case token.INTEGER:
		tok := p.advance()
		return p.parseIntegerLiteral(tok)

	case token.LPAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	case token.IDENT:
		tok := p.advance()
		if p.at(token.LPAREN) {
			return p.parseCallArgs(tok)
		}
		return &ast.Identifier{Name: tok.Literal, Pos: tok.Pos}, nil
	}
	return nil, p.errorf("unexpected token %s %q", p.cur().Type, p.cur().Literal)
}

func (p *Parser) parseCallArgs(callee token.Token) (ast.Expression, error) {
	p.advance() // (
	var args []ast.Expression
	if !p.at(token.RPAREN) {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.at(token.COMMA) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.CallExpression{Callee: callee.Literal, Args: args, Pos: callee.Pos}, nil
}
