// Package lexer turns a single line of calculator input into tokens.
package lexer

import (
	"strings"
	"unicode/utf8"
)

const eof rune = -1

const (
	digitChars      = "0123456789"
	numberChars     = digitChars + "."
	identStartChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_"
	identChars      = identStartChars + digitChars
)

type Lexer struct {
	input string

	curToken Token
	err      error

	pos   int // Current position in input.
	start int // Position of the start of the current token.
	width int // Width of the last rune read, 0 at end of input.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize scans the whole input. The returned slice always ends with a
// single TokEOF token. Scanning stops at the first offending character.
func Tokenize(input string) ([]Token, error) {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TokError {
			return nil, l.Err()
		}
		tokens = append(tokens, tok)
		if tok.Type == TokEOF {
			return tokens, nil
		}
	}
}

// NextToken scans and returns the next token. Once the end of input is
// reached, every call returns TokEOF. Once an error occurred, every call
// returns TokError and Err reports the cause.
func (l *Lexer) NextToken() Token {
	if l.err != nil {
		return l.curToken
	}
	state := lexText
	for state != nil {
		state = state(l)
	}
	return l.curToken
}

// Err returns the error that stopped the lexer, if any.
func (l *Lexer) Err() error {
	return l.err
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = n
	l.pos += n
	return r
}

// backup steps back one rune. Can only be called once per call of next.
func (l *Lexer) backup() {
	l.pos -= l.width
	l.width = 0
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) acceptFunc(fn func(rune) bool) bool {
	accepted := false
	for {
		r := l.next()
		if r == eof || !fn(r) {
			break
		}
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		pos:   l.start,
	}
	l.start = l.pos
	return t
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(l.thisToken(tt))
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

// fail stops the lexer with the given error.
func (l *Lexer) fail(err error) stateFn {
	l.err = err
	l.curToken = Token{
		Type:  TokError,
		Value: err.Error(),
		pos:   l.start,
	}
	return nil
}
