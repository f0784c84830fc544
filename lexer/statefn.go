package lexer

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'+': TokPlus,
	'-': TokMinus,
	'*': TokStar,
	'/': TokSlash,
	'(': TokParenLeft,
	')': TokParenRight,
	'=': TokEquals,
	';': TokSemicolon,
}

func lexText(l *Lexer) stateFn {
	l.acceptFunc(unicode.IsSpace)
	l.ignore()

	switch r := l.peek(); {
	case r == eof:
		return l.emit(TokEOF)
	case strings.ContainsRune(digitChars, r):
		return lexNumber
	case strings.ContainsRune(identStartChars, r):
		return lexIdentifier
	}

	r := l.next()
	if tok, ok := singles[r]; ok {
		return l.emit(tok)
	}
	return l.fail(&UnrecognizedCharacterError{Char: r, Pos: l.start + 1})
}

func lexNumber(l *Lexer) stateFn {
	l.acceptRun(numberChars)
	text := l.input[l.start:l.pos]
	if strings.Count(text, ".") > 1 {
		return l.fail(&MalformedNumberError{Text: text, Pos: l.start + 1})
	}
	n, err := strconv.ParseFloat(text, 64)
	// Out of range literals saturate to +Inf.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return l.fail(&MalformedNumberError{Text: text, Pos: l.start + 1})
	}
	tok := l.thisToken(TokNumber)
	tok.Num = n
	return l.emitToken(tok)
}

func lexIdentifier(l *Lexer) stateFn {
	l.acceptRun(identChars)
	return l.emit(TokIdentifier)
}
