package parser

import (
	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

// parseStatement looks one token past an identifier to pick between an
// assignment and a bare expression, so `x;` is a variable reference.
func parseStatement(p *parser) ast.Node {
	var stmt ast.Node
	if p.curToken.Type == lexer.TokIdentifier && p.peek().Type == lexer.TokEquals {
		stmt = parseAssignment(p)
	} else {
		stmt = parseExpr(p)
		// The terminator is optional for bare expressions.
		if p.curToken.Type == lexer.TokSemicolon {
			p.nextToken()
		}
	}

	if p.curToken.Type != lexer.TokEOF {
		panic(&TrailingTokensError{Found: p.curToken})
	}
	return stmt
}

func parseAssignment(p *parser) ast.Node {
	name := p.expect(lexer.TokIdentifier).Value
	p.expect(lexer.TokEquals)
	value := parseExpr(p)
	p.expect(lexer.TokSemicolon)

	return ast.Assignment{
		Name:  name,
		Value: value,
	}
}
