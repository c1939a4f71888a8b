/*
Package parser turns a subc token stream into an ast.Program by
recursive descent over a fixed precedence cascade (see parseAssignment
down through parsePrimary). Unlike the teacher's Pratt parser, which
registers a prefix/infix function per token type in a map, subc's
grammar is small and fully fixed by spec, so each precedence level gets
its own named production function instead — closer to the shape the
the original Rust parser combinators built top level out of
(factor/term/expression chains in original_source/src/parsing.rs).

The parser fails fast: the first mismatch returns a *cerrors.ParseError
and stops, rather than accumulating a list of errors the way the
teacher's Parser.Errors field does. That suits a batch compiler driven
one file at a time; there is no REPL here to benefit from partial
recovery.
*/
package parser

import (
	"fmt"

	"github.com/subc-lang/subc/ast"
	"github.com/subc-lang/subc/cerrors"
	"github.com/subc-lang/subc/lexer"
	"github.com/subc-lang/subc/token"
)

// Parser consumes a pre-lexed token slice one token at a time.
type Parser struct {
	toks []token.Token
	pos  int
}

// New builds a Parser over an already-tokenized source.
func New(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse lexes src and parses it into a Program in one step, the entry
// point the compiler package uses.
func Parse(src string) (*ast.Program, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return New(toks).ParseProgram()
}

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) peekAt(offset int) token.Token {
	i := p.pos + offset
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[i]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) at(t token.Type) bool {
	return p.cur().Type == t
}

// expect consumes the current token if it matches t, otherwise returns
// a ParseError naming what was expected.
func (p *Parser) expect(t token.Type) (token.Token, error) {
	if !p.at(t) {
		return token.Token{}, p.errorf("expected %s, got %s %q", t, p.cur().Type, p.cur().Literal)
	}
	return p.advance(), nil
}

func (p *Parser) errorf(format string, args ...any) error {
	return &cerrors.ParseError{Msg: fmt.Sprintf(format, args...), Pos: p.cur().Pos}
}

// ParseProgram parses a sequence of function declarations/definitions
// until EOF.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.at(token.EOF) {
		fn, err := p.parseFunction()
		if err != nil {
			return nil, err
		}
		prog.Functions = append(prog.Functions, fn)
	}
	return prog, nil
}

// parseFunction parses `int IDENT ( param-list ) body`.
func (p *Parser) parseFunction() (*ast.Function, error) {
	pos := p.cur().Pos
	if _, err := p.expect(token.INT); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	fn := &ast.Function{Name: nameTok.Literal, Params: params, ReturnType: ast.TypeInt, Pos: pos}

	if p.at(token.SEMICOLON) {
		p.advance()
		return fn, nil // declaration only
	}

	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	body, err := p.parseBlockItems()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	if body == nil {
		body = []ast.Statement{} // `{ }` is still a definition
	}
	fn.Body = body
	return fn, nil
}

// parseParamList parses a comma-separated, possibly empty list of
// `int IDENT` pairs.
func (p *Parser) parseParamList() ([]ast.Param, error) {
	var params []ast.Param
	if p.at(token.RPAREN) {
		return params, nil
	}
	for {
		if _, err := p.expect(token.INT); err != nil {
			return nil, err
		}
		nameTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Param{Type: ast.TypeInt, Name: nameTok.Literal})
		if !p.at(token.COMMA) {
			break
		}
		p.advance()
	}
	return params, nil
}

// parseBlockItems parses statements/declarations until the closing
// brace, without consuming it.
func (p *Parser) parseBlockItems() ([]ast.Statement, error) {
	var items []ast.Statement
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		item, err := p.parseBlockItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// parseBlockItem parses a declaration or a statement.
func (p *Parser) parseBlockItem() (ast.Statement, error) {
	if p.at(token.INT) {
		return p.parseDeclaration()
	}
	return p.parseStatement()
}

// parseDeclaration parses `int IDENT [= expr] ;`.
func (p *Parser) parseDeclaration() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance() // int
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	decl := &ast.DeclarationStatement{Type: ast.TypeInt, Name: nameTok.Literal, Pos: pos}
	if p.at(token.ASSIGN) {
		p.advance()
		init, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		decl.Init = init
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return decl, nil
}
