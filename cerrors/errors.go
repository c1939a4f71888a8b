// Package cerrors defines the three structured error kinds shared across
// every subc compiler stage: LexError, ParseError, and ValidationError.
// Centralizing them here (rather than letting each stage define its own,
// as the teacher's parser does with its local Errors []string) lets the
// driver type-switch on stage without importing lexer/parser/validate
// just for their error types.
package cerrors

import (
	"fmt"

	"github.com/subc-lang/subc/token"
)

// LexError reports a lexical analysis failure at a source position.
// The lexer stops at the first unmatched character; subc never tries to
// recover and keep scanning.
type LexError struct {
	Msg string
	Pos token.Position
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer error at %s: %s", e.Pos, e.Msg)
}

// Stage identifies which pipeline stage produced the error.
func (e *LexError) Stage() string { return "lexer" }

// ParseError reports a syntax mismatch encountered by the parser.
// Like LexError, the parser fails on the first mismatch rather than
// collecting a list of errors (a deliberate divergence from the
// teacher's REPL-oriented Parser.Errors accumulation).
type ParseError struct {
	Msg string
	Pos token.Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parser error at %s: %s", e.Pos, e.Msg)
}

// Stage identifies which pipeline stage produced the error.
func (e *ParseError) Stage() string { return "parser" }

// ValidationError reports a whole-program semantic inconsistency:
// conflicting function signatures or a call to an undeclared function.
// The code generator also raises it for an undeclared variable, a
// duplicate declaration in one scope, and break/continue outside a loop.
// It carries no source position because the validator (per spec) only
// tracks function names and arities, not per-call-site tokens.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Msg)
}

// Stage identifies which pipeline stage produced the error.
func (e *ValidationError) Stage() string { return "validation" }
