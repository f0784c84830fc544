// Package ast defines the syntax tree of a calculator statement.
package ast

import (
	"fmt"
	"strconv"

	"go.creack.net/calc/lexer"
)

// Structure following the statement grammar:
//
//	statement  := assignment | expr [';']
//	assignment := IDENTIFIER '=' expr ';'
//	expr       := term (('+' | '-') term)*
//	term       := factor (('*' | '/') factor)*
//	factor     := NUMBER | IDENTIFIER | '(' expr ')'

// Node is any node of the tree. The set of implementations is closed.
type Node interface {
	Dump() string
	node()
}

// Operator is the arithmetic operation of a BinaryOp.
type Operator int

const (
	OpAdd Operator = iota + 1
	OpSub
	OpMul
	OpDiv
)

func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "Operator(" + strconv.Itoa(int(o)) + ")"
}

var operatorGoNames = map[Operator]string{
	OpAdd: "ast.OpAdd",
	OpSub: "ast.OpSub",
	OpMul: "ast.OpMul",
	OpDiv: "ast.OpDiv",
}

// GoString names the constant, so %#v and kr/pretty dumps stay readable.
func (o Operator) GoString() string {
	if s, ok := operatorGoNames[o]; ok {
		return s
	}
	return "ast.Operator(" + strconv.Itoa(int(o)) + ")"
}

type NumberLiteral struct {
	Value float64
}

func (NumberLiteral) node() {}

func (n NumberLiteral) Dump() string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

type VariableRef struct {
	Name string
}

func (VariableRef) node() {}

func (v VariableRef) Dump() string { return v.Name }

// BinaryOp represents left <op> right.
type BinaryOp struct {
	Op    Operator
	Token lexer.Token // Operator token as found in the input.
	Left  Node
	Right Node
}

func (BinaryOp) node() {}

func (b BinaryOp) Dump() string {
	return fmt.Sprintf("(%s %s %s)", dump(b.Left), b.Op, dump(b.Right))
}

// Assignment represents name = value. It evaluates to the assigned value.
type Assignment struct {
	Name  string
	Value Node
}

func (Assignment) node() {}

func (a Assignment) Dump() string {
	return fmt.Sprintf("%s = %s;", a.Name, dump(a.Value))
}

func dump(n Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.Dump()
}
