package parser

import (
	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

type bindingPower int

const (
	bpDefault bindingPower = iota
	bpAdditive
	bpMultiplicative
)

type lookupTable[T any] map[lexer.TokenType]T

var bindingPowerLookupTable = lookupTable[bindingPower]{
	lexer.TokPlus:  bpAdditive,
	lexer.TokMinus: bpAdditive,
	lexer.TokStar:  bpMultiplicative,
	lexer.TokSlash: bpMultiplicative,
}

var operatorLookupTable = lookupTable[ast.Operator]{
	lexer.TokPlus:  ast.OpAdd,
	lexer.TokMinus: ast.OpSub,
	lexer.TokStar:  ast.OpMul,
	lexer.TokSlash: ast.OpDiv,
}
