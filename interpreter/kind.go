package interpreter

import (
	"errors"

	"go.creack.net/calc/executor"
	"go.creack.net/calc/lexer"
	"go.creack.net/calc/parser"
)

// Kind identifies an error independently of its message.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnrecognizedCharacter
	KindMalformedNumber
	KindUnexpectedToken
	KindExpectedFactor
	KindTrailingTokens
	KindUndefinedVariable
	KindDivisionByZero
)

var kindStrings = map[Kind]string{
	KindUnknown:               "unknown",
	KindUnrecognizedCharacter: "unrecognized_character",
	KindMalformedNumber:       "malformed_number",
	KindUnexpectedToken:       "unexpected_token",
	KindExpectedFactor:        "expected_factor",
	KindTrailingTokens:        "trailing_tokens",
	KindUndefinedVariable:     "undefined_variable",
	KindDivisionByZero:        "division_by_zero",
}

// String returns the stable name of the kind.
func (k Kind) String() string {
	if s, ok := kindStrings[k]; ok {
		return s
	}
	return kindStrings[KindUnknown]
}

// Stage is the pipeline stage an error kind belongs to.
func (k Kind) Stage() string {
	switch k {
	case KindUnrecognizedCharacter, KindMalformedNumber:
		return "lex"
	case KindUnexpectedToken, KindExpectedFactor, KindTrailingTokens:
		return "parse"
	case KindUndefinedVariable, KindDivisionByZero:
		return "eval"
	}
	return ""
}

// KindOf classifies err. Errors that did not come from the pipeline are
// KindUnknown.
func KindOf(err error) Kind {
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
		return KindUnknown
	case errors.As(err, &unrecognized):
		return KindUnrecognizedCharacter
	case errors.As(err, &malformed):
		return KindMalformedNumber
	case errors.As(err, &unexpected):
		return KindUnexpectedToken
	case errors.As(err, &factor):
		return KindExpectedFactor
	case errors.As(err, &trailing):
		return KindTrailingTokens
	case errors.As(err, &undefined):
		return KindUndefinedVariable
	case errors.As(err, &divZero):
		return KindDivisionByZero
	}
	return KindUnknown
}
