package lexer

import (
	"errors"
	"fmt"
)

// ErrLex matches every error produced by the lexer.
var ErrLex = errors.New("lex error")

// UnrecognizedCharacterError is returned when the input contains a rune
// outside of the supported set.
type UnrecognizedCharacterError struct {
	Char rune
	Pos  int // 1-based byte column.
}

func (e *UnrecognizedCharacterError) Error() string {
	return fmt.Sprintf("%d: unrecognized character %q", e.Pos, e.Char)
}

func (e *UnrecognizedCharacterError) Unwrap() error { return ErrLex }

// MalformedNumberError is returned when a numeric literal has more than one
// decimal point.
type MalformedNumberError struct {
	Text string
	Pos  int // 1-based byte column.
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("%d: malformed number %q", e.Pos, e.Text)
}

func (e *MalformedNumberError) Unwrap() error { return ErrLex }
