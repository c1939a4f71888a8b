package parser

import (
	"strconv"

	"github.com/subc-lang/subc/ast"
	"github.com/subc-lang/subc/token"
)

// parseIntegerLiteral converts a scanned INTEGER token's literal text
// into an ast.IntegerLiteral. The lexer only ever produces digit runs,
// so the one way this fails is a literal too large for int64, which is
// reported as a ParseError.
func (p *Parser) parseIntegerLiteral(tok token.Token) (ast.Expression, error) {
	val, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		return nil, p.errorf("invalid integer literal %q: %v", tok.Literal, err)
	}
	return &ast.IntegerLiteral{Value: val, Pos: tok.Pos}, nil
}
