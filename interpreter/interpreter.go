// Package interpreter runs one line of input through the lexer, the parser
// and the evaluator.
package interpreter

import (
	"go.creack.net/calc/executor"
	"go.creack.net/calc/parser"
)

// EvaluateLine tokenizes, parses and evaluates input against env. The first
// error aborts the remaining stages. The whole line is tokenized before
// parsing starts, so a lex error wins over a parse error located earlier in
// the line. env is only modified by a successful assignment. A nil env is
// treated as a fresh, throw-away one.
func EvaluateLine(input string, env *executor.Env) (float64, error) {
	if env == nil {
		env = executor.NewEnv()
	}
	node, err := parser.ParseString(input)
	if err != nil {
		return 0, err
	}
	return executor.Evaluate(node, env)
}

// Session is one interpreter session: an Evaluator and the environment it
// owns. A Session must not be used concurrently.
type Session struct {
	ev *executor.Evaluator
}

// NewSession creates a session with an empty environment.
func NewSession() *Session {
	return &Session{ev: executor.New()}
}

// EvaluateLine evaluates input against the session environment.
func (s *Session) EvaluateLine(input string) (float64, error) {
	return EvaluateLine(input, s.ev.Env())
}

// Env returns the session environment.
func (s *Session) Env() *executor.Env {
	return s.ev.Env()
}
