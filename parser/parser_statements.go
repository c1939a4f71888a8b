package parser

import (
	"github.com/subc-lang/subc/ast"
	"github.com/subc-lang/subc/token"
)

// parseStatement dispatches on the leading token: keyword-led forms
// first, `{` for a compound, and anything else as an expression
// statement (including the empty `;`).
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur().Type {
	case token.LBRACE:
		return p.parseCompound()
	case token.RETURN:
		return p.parseReturn()
	case token.IF:
		return p.parseIf()
	case token.FOR:
		return p.parseFor()
	case token.WHILE:
		return p.parseWhile()
	case token.DO:
		return p.parseDo()
	case token.BREAK:
		return p.parseBreak()
	case token.CONTINUE:
		return p.parseContinue()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseCompound() (ast.Statement, error) {
	pos := p.cur().Pos
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	items, err := p.parseBlockItems()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.CompoundStatement{Statements: items, Pos: pos}, nil
}

func (p *Parser) parseReturn() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance() // return
	val, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.ReturnStatement{Value: val, Pos: pos}, nil
}

func (p *Parser) parseIf() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance() // if
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStatement{Cond: cond, Then: then, Pos: pos}
	if p.at(token.ELSE) {
		p.advance()
		els, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmt.Else = els
	}
	return stmt, nil
}

// parseFor parses a for loop, trying the declaration-init form first
// (`for ( int i = 0; ...`) and falling back to the expression-init form
// since the two only diverge after `(` on whether `int` appears.
func (p *Parser) parseFor() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance() // for
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	if p.at(token.INT) {
		initDecl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		cond, err := p.parseForCond()
		if err != nil {
			return nil, err
		}
		post, err := p.parseForPost()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		body, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		return &ast.ForDeclStatement{
			Init: initDecl.(*ast.DeclarationStatement),
			Cond: cond,
			Post: post,
			Body: body,
			Pos:  pos,
		}, nil
	}

	var init ast.Expression
	if !p.at(token.SEMICOLON) {
		var err error
		init, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	cond, err := p.parseForCond()
	if err != nil {
		return nil, err
	}
	post, err := p.parseForPost()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.ForStatement{Init: init, Cond: cond, Post: post, Body: body, Pos: pos}, nil
}

// parseForCond parses the condition clause up to and including its
// terminating `;`. An omitted condition is left nil; codegen treats a
// nil Cond as the literal `1` (infinite loop), per spec.
func (p *Parser) parseForCond() (ast.Expression, error) {
	var cond ast.Expression
	if !p.at(token.SEMICOLON) {
		var err error
		cond, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return cond, nil
}

// parseForPost parses the step clause up to (not including) the
// closing `)`.
func (p *Parser) parseForPost() (ast.Expression, error) {
	if p.at(token.RPAREN) {
		return nil, nil
	}
	return p.parseExpression()
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance() // while
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Cond: cond, Body: body, Pos: pos}, nil
}

func (p *Parser) parseDo() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance() // do
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.WHILE); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.DoStatement{Body: body, Cond: cond, Pos: pos}, nil
}

func (p *Parser) parseBreak() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance()
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.BreakStatement{Pos: pos}, nil
}

func (p *Parser) parseContinue() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance()
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.ContinueStatement{Pos: pos}, nil
}

// parseExpressionStatement parses a bare expression followed by `;`.
// An expression-statement consisting only of `;` (an empty statement)
// is represented as an ExpressionStatement with a nil Expr.
func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	pos := p.cur().Pos
	if p.at(token.SEMICOLON) {
		p.advance()
		return &ast.ExpressionStatement{Pos: pos}, nil
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Expr: expr, Pos: pos}, nil
}
