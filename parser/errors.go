package parser

import (
	"errors"
	"fmt"

	"go.creack.net/calc/lexer"
)

// ErrParse matches every error produced by the parser.
var ErrParse = errors.New("parse error")

// UnexpectedTokenError is returned when the grammar requires a specific
// token type.
type UnexpectedTokenError struct {
	Expected lexer.TokenType
	Found    lexer.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("%d: expected %s, found %s", e.Found.Pos(), e.Expected, describe(e.Found))
}

func (e *UnexpectedTokenError) Unwrap() error { return ErrParse }

// ExpectedFactorError is returned when an operand is required but the
// current token cannot start one.
type ExpectedFactorError struct {
	Found lexer.Token
}

func (e *ExpectedFactorError) Error() string {
	return fmt.Sprintf("%d: expected a number, a variable or '(', found %s", e.Found.Pos(), describe(e.Found))
}

func (e *ExpectedFactorError) Unwrap() error { return ErrParse }

// TrailingTokensError is returned when input continues after a complete
// statement.
type TrailingTokensError struct {
	Found lexer.Token
}

func (e *TrailingTokensError) Error() string {
	return fmt.Sprintf("%d: unexpected %s after end of statement", e.Found.Pos(), describe(e.Found))
}

func (e *TrailingTokensError) Unwrap() error { return ErrParse }

func describe(tok lexer.Token) string {
	if tok.Type == lexer.TokEOF {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", tok.Type, tok.Value)
}
