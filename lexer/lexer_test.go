package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subc-lang/subc/token"
)

type tokenCase struct {
	name     string
	input    string
	expected []token.Type
}

func TestTokenize_Punctuation(t *testing.T) {
	cases := []tokenCase{
		{
			name:     "structural symbols",
			input:    "{ } ( ) ; : , ?",
			expected: []token.Type{token.LBRACE, token.RBRACE, token.LPAREN, token.RPAREN, token.SEMICOLON, token.COLON, token.COMMA, token.QUESTION, token.EOF},
		},
		{
			name:     "two-character operators before their prefixes",
			input:    "&& || == != <= >= ++ -- += -= *= /=",
			expected: []token.Type{token.AND, token.OR, token.EQ, token.NEQ, token.LE, token.GE, token.INC, token.DEC, token.PLUS_EQ, token.MINUS_EQ, token.STAR_EQ, token.SLASH_EQ, token.EOF},
		},
		{
			name:     "single-character operators not swallowed by longest match",
			input:    "+ - * / = < > ! ~",
			expected: []token.Type{token.PLUS, token.MINUS, token.STAR, token.SLASH, token.ASSIGN, token.LT, token.GT, token.NOT, token.BIT_NOT, token.EOF},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Tokenize(tc.input)
			require.NoError(t, err)
			got := make([]token.Type, len(toks))
			for i, tok := range toks {
				got[i] = tok.Type
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestTokenize_KeywordsAndIdentifiersAreDisjoint(t *testing.T) {
	toks, err := Tokenize("int return returned returning")
	require.NoError(t, err)
	require.Len(t, toks, 5) // int, return, returned, returning, EOF

	assert.Equal(t, token.INT, toks[0].Type)
	assert.Equal(t, token.RETURN, toks[1].Type)
	assert.Equal(t, token.IDENT, toks[2].Type)
	assert.Equal(t, "returned", toks[2].Literal)
	assert.Equal(t, token.IDENT, toks[3].Type)
	assert.Equal(t, "returning", toks[3].Literal)
}

func TestTokenize_IntegerLiteral(t *testing.T) {
	toks, err := Tokenize("42")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.INTEGER, toks[0].Type)
	assert.Equal(t, "42", toks[0].Literal)
}

func TestTokenize_WhitespaceInsensitivity(t *testing.T) {
	dense, err := Tokenize("1+2*3")
	require.NoError(t, err)
	spaced, err := Tokenize("  1 \t+  2\n*\n3  ")
	require.NoError(t, err)

	require.Equal(t, len(dense), len(spaced))
	for i := range dense {
		assert.Equal(t, dense[i].Type, spaced[i].Type)
		assert.Equal(t, dense[i].Literal, spaced[i].Literal)
	}
}

func TestTokenize_PositionsTrackLineAndColumn(t *testing.T) {
	toks, err := Tokenize("int main\n  x")
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, 1, toks[0].Pos.Line)
	assert.Equal(t, 1, toks[0].Pos.Column)
	assert.Equal(t, 2, toks[2].Pos.Line)
	assert.Equal(t, 3, toks[2].Pos.Column)
}

func TestNextToken_UnexpectedCharacterIsLexError(t *testing.T) {
	_, err := Tokenize("int main() { return @; }")
	require.Error(t, err)
	lexErr, ok := err.(interface{ Stage() string })
	require.True(t, ok)
	assert.Equal(t, "lexer", lexErr.Stage())
}
