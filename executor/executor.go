// Package executor evaluates calculator syntax trees.
package executor

import (
	"go.creack.net/calc/ast"
)

// Evaluator walks trees against the environment it owns.
// Like Env, it is meant for a single session and is not safe for
// concurrent use.
type Evaluator struct {
	env *Env
}

// New creates an Evaluator with an empty environment.
func New() *Evaluator {
	return NewWithEnv(NewEnv())
}

// NewWithEnv creates an Evaluator owning env.
func NewWithEnv(env *Env) *Evaluator {
	if env == nil {
		env = NewEnv()
	}
	return &Evaluator{env: env}
}

func (ev *Evaluator) Env() *Env { return ev.env }

func (ev *Evaluator) Evaluate(node ast.Node) (float64, error) {
	return Evaluate(node, ev.env)
}

// Evaluate computes the value of node. Assignments update env, and only once
// their value has been fully computed. env must not be nil.
func Evaluate(node ast.Node, env *Env) (float64, error) {
	switch n := node.(type) {
	case ast.NumberLiteral:
		return n.Value, nil
	case ast.VariableRef:
		v, ok := env.Get(n.Name)
		if !ok {
			return 0, &UndefinedVariableError{Name: n.Name}
		}
		return v, nil
	case ast.Assignment:
		v, err := Evaluate(n.Value, env)
		if err != nil {
			return 0, err
		}
		env.Set(n.Name, v)
		return v, nil
	case ast.BinaryOp:
		return evaluateBinaryOp(n, env)
	default:
		return 0, &UnsupportedNodeError{Node: node}
	}
}

func evaluateBinaryOp(b ast.BinaryOp, env *Env) (float64, error) {
	// Left is fully evaluated first so the leftmost failure is reported.
	left, err := Evaluate(b.Left, env)
	if err != nil {
		return 0, err
	}
	right, err := Evaluate(b.Right, env)
	if err != nil {
		return 0, err
	}

	switch b.Op {
	case ast.OpAdd:
		return left + right, nil
	case ast.OpSub:
		return left - right, nil
	case ast.OpMul:
		return left * right, nil
	case ast.OpDiv:
		if right == 0 {
			return 0, &DivisionByZeroError{Operator: b.Token}
		}
		return left / right, nil
	default:
		return 0, &UnsupportedNodeError{Node: b}
	}
}
