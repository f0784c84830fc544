// Package parser builds the syntax tree of one calculator statement.
package parser

import (
	"errors"
	"slices"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

type parser struct {
	tokens []lexer.Token
	pos    int

	prevToken lexer.Token
	curToken  lexer.Token
}

func newParser(tokens []lexer.Token) *parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != lexer.TokEOF {
		tokens = append(slices.Clone(tokens), lexer.Token{Type: lexer.TokEOF})
	}
	return &parser{
		tokens:   tokens,
		curToken: tokens[0],
	}
}

// Parse builds the tree of a single statement. The whole token stream must
// be consumed.
func Parse(tokens []lexer.Token) (node ast.Node, err error) {
	p := newParser(tokens)
	defer p.recover(&err)

	return parseStatement(p), nil
}

// ParseString tokenizes and parses input.
func ParseString(input string) (ast.Node, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// recover turns a parse error panic into a returned error.
// Anything else is not ours and keeps unwinding.
func (p *parser) recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if err, ok := r.(error); ok && errors.Is(err, ErrParse) {
		*errp = err
		return
	}
	panic(r)
}

func (p *parser) nextToken() lexer.Token {
	p.prevToken = p.curToken
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.curToken = p.tokens[p.pos]
	return p.curToken
}

func (p *parser) peek() lexer.Token {
	if p.pos < len(p.tokens)-1 {
		return p.tokens[p.pos+1]
	}
	return p.curToken
}

// expect consumes the current token if it is of the expected type.
func (p *parser) expect(kind lexer.TokenType) lexer.Token {
	if p.curToken.Type != kind {
		panic(&UnexpectedTokenError{Expected: kind, Found: p.curToken})
	}
	tok := p.curToken
	p.nextToken()
	return tok
}
