package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Identifiers + literals.
	TokIdentifier
	TokNumber

	// Operators.
	TokPlus   // '+'.
	TokMinus  // '-'.
	TokStar   // '*'.
	TokSlash  // '/'.
	TokEquals // '='.

	// Delimiters.
	TokParenLeft
	TokParenRight
	TokSemicolon

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	if s, ok := tokenTypeStrings[tt]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokIdentifier: "IDENTIFIER",
	TokNumber:     "NUMBER",

	TokPlus:   "PLUS",
	TokMinus:  "MINUS",
	TokStar:   "STAR",
	TokSlash:  "SLASH",
	TokEquals: "EQUALS",

	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",
	TokSemicolon:  "SEMICOLON",
}

// GoString names the constant, so %#v and kr/pretty dumps stay readable.
func (tt TokenType) GoString() string {
	if tt >= TokError && tt < FinalToken {
		return "lexer.Tok" + tokenTypeGoNames[tt]
	}
	return fmt.Sprintf("lexer.TokenType(%d)", int(tt))
}

var tokenTypeGoNames = [...]string{
	TokError:      "Error",
	TokEOF:        "EOF",
	TokIdentifier: "Identifier",
	TokNumber:     "Number",
	TokPlus:       "Plus",
	TokMinus:      "Minus",
	TokStar:       "Star",
	TokSlash:      "Slash",
	TokEquals:     "Equals",
	TokParenLeft:  "ParenLeft",
	TokParenRight: "ParenRight",
	TokSemicolon:  "Semicolon",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// Token represents a lexical token.
type Token struct {
	Type  TokenType
	Value string  // Exact source text.
	Num   float64 // Parsed value, only set for TokNumber.

	pos int
}

// Pos returns the 1-based byte column where the token starts.
func (t Token) Pos() int { return t.pos + 1 }

func (t Token) String() string {
	switch {
	case t.Type == TokEOF:
		return "EOF"
	case len(t.Value) > 16:
		return fmt.Sprintf("%s[%d]: %.16q", t.Type, t.Pos(), t.Value)
	}
	return fmt.Sprintf("%s[%d]: %q", t.Type, t.Pos(), t.Value)
}
