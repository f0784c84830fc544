package interpreter_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/calc/executor"
	"go.creack.net/calc/interpreter"
	"go.creack.net/calc/lexer"
	"go.creack.net/calc/parser"
)

func TestEvaluateLineArithmetic(t *testing.T) {
	operands := []float64{0, 1, 2.5, 7, 10, 123.75}
	for _, a := range operands {
		for _, b := range operands {
			tests := []struct {
				op   string
				want float64
				skip bool
			}{
				{op: "+", want: a + b},
				{op: "-", want: a - b},
				{op: "*", want: a * b},
				{op: "/", want: a / b, skip: b == 0},
			}
			for _, tt := range tests {
				if tt.skip {
					continue
				}
				input := fmt.Sprintf("%g %s %g;", a, tt.op, b)
				got, err := interpreter.EvaluateLine(input, executor.NewEnv())
				require.NoError(t, err, input)
				assert.Equal(t, tt.want, got, input)
			}
		}
	}
}

func TestEvaluateLineAssignmentPersists(t *testing.T) {
	env := executor.NewEnv()

	got, err := interpreter.EvaluateLine("x = 5;", env)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)
	x, ok := env.Get("x")
	require.True(t, ok)
	assert.Equal(t, 5.0, x)

	got, err = interpreter.EvaluateLine("x + 1;", env)
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)
}

func TestEvaluateLineResults(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{input: "(2 + 3) * 4;", want: 20},
		{input: "2 + 3 * 4;", want: 14},
		{input: "3 - 2 - 1;", want: 0},
		{input: "2 + 3 * 4", want: 14},
		{input: "  10 / 4  ", want: 2.5},
		{input: "((1))", want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := interpreter.EvaluateLine(tt.input, executor.NewEnv())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateLineErrors(t *testing.T) {
	tests := []struct {
		input    string
		kind     interpreter.Kind
		sentinel error
		check    func(t *testing.T, err error)
	}{
		{input: "y + 1;", kind: interpreter.KindUndefinedVariable, sentinel: executor.ErrEval, check: func(t *testing.T, err error) {
			var e *executor.UndefinedVariableError
			require.ErrorAs(t, err, &e)
			assert.Equal(t, "y", e.Name)
		}},
		{input: "1 / 0;", kind: interpreter.KindDivisionByZero, sentinel: executor.ErrEval},
		{input: "1.2.3;", kind: interpreter.KindMalformedNumber, sentinel: lexer.ErrLex},
		{input: "3 $ 4;", kind: interpreter.KindUnrecognizedCharacter, sentinel: lexer.ErrLex, check: func(t *testing.T, err error) {
			var e *lexer.UnrecognizedCharacterError
			require.ErrorAs(t, err, &e)
			assert.Equal(t, '$', e.Char)
		}},
		{input: "x = ;", kind: interpreter.KindExpectedFactor, sentinel: parser.ErrParse},
		{input: "1 + 2 3;", kind: interpreter.KindTrailingTokens, sentinel: parser.ErrParse},
		{input: "x = 5", kind: interpreter.KindUnexpectedToken, sentinel: parser.ErrParse},
		// Tokenization runs to completion first.
		{input: "1 + 2 3 $", kind: interpreter.KindUnrecognizedCharacter, sentinel: lexer.ErrLex},
		// Parse errors abort before evaluation.
		{input: "1 / 0 )", kind: interpreter.KindTrailingTokens, sentinel: parser.ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			env := executor.NewEnv()
			got, err := interpreter.EvaluateLine(tt.input, env)
			require.Error(t, err)
			assert.Zero(t, got)
			assert.Equal(t, tt.kind, interpreter.KindOf(err))
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Zero(t, env.Len(), "failed call must not touch the environment")
			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}
}

func TestEvaluateLineFailedAssignmentIsAtomic(t *testing.T) {
	env := executor.NewEnv()
	_, err := interpreter.EvaluateLine("x = 1;", env)
	require.NoError(t, err)

	for _, input := range []string{"x = 1 / 0;", "x = undefined;", "x = 2", "x = 2 $;"} {
		_, err := interpreter.EvaluateLine(input, env)
		require.Error(t, err, input)
		x, _ := env.Get("x")
		assert.Equal(t, 1.0, x, input)
		assert.Equal(t, 1, env.Len(), input)
	}
}

func TestEvaluateLineIdempotent(t *testing.T) {
	env := executor.NewEnv()
	_, err := interpreter.EvaluateLine("a = 4;", env)
	require.NoError(t, err)
	before := env.Snapshot()

	for range 10 {
		got, err := interpreter.EvaluateLine("a * (a - 1) / 2;", env)
		require.NoError(t, err)
		assert.Equal(t, 6.0, got)
		assert.Equal(t, before, env.Snapshot())
	}
}

func TestEvaluateLineBareVariable(t *testing.T) {
	env := executor.NewEnv()
	_, err := interpreter.EvaluateLine("x;", env)
	assert.Equal(t, interpreter.KindUndefinedVariable, interpreter.KindOf(err))

	_, err = interpreter.EvaluateLine("x = 2;", env)
	require.NoError(t, err)
	for _, input := range []string{"x", "x;", "(x);"} {
		got, err := interpreter.EvaluateLine(input, env)
		require.NoError(t, err, input)
		assert.Equal(t, 2.0, got, input)
	}
}

func TestSession(t *testing.T) {
	s1 := interpreter.NewSession()
	s2 := interpreter.NewSession()

	_, err := s1.EvaluateLine("n = 3;")
	require.NoError(t, err)

	got, err := s1.EvaluateLine("n * 2")
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)

	// Sessions do not share state.
	_, err = s2.EvaluateLine("n")
	assert.Equal(t, interpreter.KindUndefinedVariable, interpreter.KindOf(err))
	assert.Equal(t, []string{"n"}, s1.Env().Names())
	assert.Zero(t, s2.Env().Len())
}

func TestKind(t *testing.T) {
	assert.Equal(t, interpreter.KindUnknown, interpreter.KindOf(nil))
	assert.Equal(t, interpreter.KindUnknown, interpreter.KindOf(errors.New("other")))
	assert.Equal(t, interpreter.KindUnknown, interpreter.KindOf(&executor.UnsupportedNodeError{}))

	wrapped := fmt.Errorf("line 3: %w", &executor.DivisionByZeroError{})
	assert.Equal(t, interpreter.KindDivisionByZero, interpreter.KindOf(wrapped))

	assert.Equal(t, "division_by_zero", interpreter.KindDivisionByZero.String())
	assert.Equal(t, "unknown", interpreter.Kind(99).String())
	assert.Equal(t, "lex", interpreter.KindMalformedNumber.Stage())
	assert.Equal(t, "parse", interpreter.KindTrailingTokens.Stage())
	assert.Equal(t, "eval", interpreter.KindUndefinedVariable.Stage())
	assert.Equal(t, "", interpreter.KindUnknown.Stage())
}

func TestEvaluateLineNilEnv(t *testing.T) {
	v, err := interpreter.EvaluateLine("x = 1;", nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	_, err = interpreter.EvaluateLine("x + 1;", nil)
	assert.Equal(t, interpreter.KindUndefinedVariable, interpreter.KindOf(err), "each nil env is a fresh one")
}
