package parser

import (
	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

func parseExpr(p *parser) ast.Node {
	return parseBinaryExpr(p, bpAdditive, parseTerm)
}

func parseTerm(p *parser) ast.Node {
	return parseBinaryExpr(p, bpMultiplicative, parseFactor)
}

// parseBinaryExpr parses operand (op operand)* for the operators of the
// given binding power, grouping to the left.
func parseBinaryExpr(p *parser, bp bindingPower, operand func(*parser) ast.Node) ast.Node {
	left := operand(p)
	for bindingPowerLookupTable[p.curToken.Type] == bp {
		operator := p.curToken
		p.nextToken()
		right := operand(p)

		left = ast.BinaryOp{
			Op:    operatorLookupTable[operator.Type],
			Token: operator,
			Left:  left,
			Right: right,
		}
	}
	return left
}

func parseFactor(p *parser) ast.Node {
	switch p.curToken.Type {
	case lexer.TokNumber:
		tok := p.curToken
		p.nextToken()
		return ast.NumberLiteral{Value: tok.Num}
	case lexer.TokIdentifier:
		tok := p.curToken
		p.nextToken()
		return ast.VariableRef{Name: tok.Value}
	case lexer.TokParenLeft:
		p.nextToken()
		expr := parseExpr(p)
		p.expect(lexer.TokParenRight)
		return expr
	default:
		panic(&ExpectedFactorError{Found: p.curToken})
	}
}
