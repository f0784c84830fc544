package host_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.creack.net/calc/executor"
	"go.creack.net/calc/host"
	"go.creack.net/calc/interpreter"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "3 $ 4;", want: "unrecognized character '$' at column 3"},
		{input: "1.2.3;", want: `malformed number "1.2.3" at column 1: more than one decimal point`},
		{input: "x = 5", want: "expected ';' at column 6, found end of input"},
		{input: "(1 + 2;", want: "expected ')' at column 7, found ';'"},
		{input: "x = ;", want: "expected a number, a variable or '(' at column 5, found ';'"},
		{input: "1 + 2 3;", want: `unexpected a number "3" at column 7 after the end of the statement`},
		{input: "y + 1;", want: `undefined variable "y"`},
		{input: "1 / 0;", want: "division by zero"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := evaluate(tt.input)
			assert.Equal(t, tt.want, host.Message(err))
		})
	}
}

func TestMessageOther(t *testing.T) {
	assert.Equal(t, "", host.Message(nil))
	assert.Equal(t, "other", host.Message(errors.New("other")))
	wrapped := fmt.Errorf("line 2: %w", &executor.UndefinedVariableError{Name: "z"})
	assert.Equal(t, `undefined variable "z"`, host.Message(wrapped))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "2.5", host.Outcome{Value: 2.5}.String())
	assert.Equal(t, "division by zero", host.Outcome{Err: &executor.DivisionByZeroError{}}.String())
	assert.Equal(t, "1e+21", host.FormatValue(1e21))
}

func evaluate(input string) (float64, error) {
	return interpreter.EvaluateLine(input, executor.NewEnv())
}
