package executor

import (
	"errors"
	"fmt"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

// ErrEval matches every error produced while evaluating a tree.
var ErrEval = errors.New("eval error")

// UndefinedVariableError is returned when a variable is read before any
// assignment.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable %q", e.Name)
}

func (e *UndefinedVariableError) Unwrap() error { return ErrEval }

// DivisionByZeroError is returned when the right operand of '/' is exactly
// zero.
type DivisionByZeroError struct {
	Operator lexer.Token
}

func (e *DivisionByZeroError) Error() string {
	if e.Operator.Type == lexer.TokSlash {
		return fmt.Sprintf("%d: division by zero", e.Operator.Pos())
	}
	return "division by zero"
}

func (e *DivisionByZeroError) Unwrap() error { return ErrEval }

// UnsupportedNodeError is returned for a nil tree or a node type the
// evaluator does not know.
type UnsupportedNodeError struct {
	Node ast.Node
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("unsupported node type %T", e.Node)
}

func (e *UnsupportedNodeError) Unwrap() error { return ErrEval }
