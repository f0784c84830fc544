package host

import (
	"errors"
	"fmt"

	"go.creack.net/calc/executor"
	"go.creack.net/calc/lexer"
	"go.creack.net/calc/parser"
)

// Map of token types to how they are named in messages.
var tokenNames = map[lexer.TokenType]string{
	lexer.TokEOF:        "end of input",
	lexer.TokIdentifier: "a variable",
	lexer.TokNumber:     "a number",
	lexer.TokPlus:       "'+'",
	lexer.TokMinus:      "'-'",
	lexer.TokStar:       "'*'",
	lexer.TokSlash:      "'/'",
	lexer.TokEquals:     "'='",
	lexer.TokParenLeft:  "'('",
	lexer.TokParenRight: "')'",
	lexer.TokSemicolon:  "';'",
}

func tokenName(tt lexer.TokenType) string {
	if s, ok := tokenNames[tt]; ok {
		return s
	}
	return tt.String()
}

func foundName(tok lexer.Token) string {
	switch tok.Type {
	case lexer.TokEOF:
		return "end of input"
	case lexer.TokIdentifier, lexer.TokNumber:
		return fmt.Sprintf("%s %q", tokenName(tok.Type), tok.Value)
	}
	return tokenName(tok.Type)
}

// Message renders err for a human. It only depends on the error kind and
// the data it carries.
func Message(err error) string {
	var (
		unrecognized *lexer.UnrecognizedCharacterError
		malformed    *lexer.MalformedNumberError
		unexpected   *parser.UnexpectedTokenError
		factor       *parser.ExpectedFactorError
		trailing     *parser.TrailingTokensError
		undefined    *executor.UndefinedVariableError
		divZero      *executor.DivisionByZeroError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &unrecognized):
		return fmt.Sprintf("unrecognized character %q at column %d", unrecognized.Char, unrecognized.Pos)
	case errors.As(err, &malformed):
		return fmt.Sprintf("malformed number %q at column %d: more than one decimal point", malformed.Text, malformed.Pos)
	case errors.As(err, &unexpected):
		return fmt.Sprintf("expected %s at column %d, found %s", tokenName(unexpected.Expected), unexpected.Found.Pos(), foundName(unexpected.Found))
	case errors.As(err, &factor):
		return fmt.Sprintf("expected a number, a variable or '(' at column %d, found %s", factor.Found.Pos(), foundName(factor.Found))
	case errors.As(err, &trailing):
		return fmt.Sprintf("unexpected %s at column %d after the end of the statement", foundName(trailing.Found), trailing.Found.Pos())
	case errors.As(err, &undefined):
		return fmt.Sprintf("undefined variable %q", undefined.Name)
	case errors.As(err, &divZero):
		return "division by zero"
	}
	return err.Error()
}
