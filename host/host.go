// Package host connects an interpreter session to an input source and an
// output sink. The interpreter itself never does I/O.
package host

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kr/pretty"

	"go.creack.net/calc/interpreter"
	"go.creack.net/calc/parser"
)

// Reader provides raw input lines. It returns io.EOF when there is no more
// input.
type Reader interface {
	ReadInput() (string, error)
}

// Displayer renders the outcome of one line.
type Displayer interface {
	Display(Outcome)
}

// Outcome is the result of evaluating one line: either a value or an error.
type Outcome struct {
	Input string
	Value float64
	Err   error
}

// Kind classifies the outcome error.
func (o Outcome) Kind() interpreter.Kind {
	return interpreter.KindOf(o.Err)
}

// String renders the value or the error message.
func (o Outcome) String() string {
	if o.Err != nil {
		return Message(o.Err)
	}
	return FormatValue(o.Value)
}

// FormatValue renders a result the shortest way that round-trips.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Runner reads lines, evaluates them in Session and displays the outcomes.
type Runner struct {
	Reader    Reader
	Displayer Displayer
	Session   *interpreter.Session

	History *History  // Optional.
	Out     io.Writer // Output of meta commands, defaults to io.Discard.
	DumpAST io.Writer // When set, the tree of each line is dumped there.
}

var errQuit = errors.New("quit")

// Run processes lines until the input is exhausted, a quit command is read
// or ctx is done. Blank lines are skipped. Lines starting with ':' are meta
// commands and are not evaluated.
func (r *Runner) Run(ctx context.Context) error {
	if r.Session == nil {
		r.Session = interpreter.NewSession()
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := r.Reader.ReadInput()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, ":"):
			if err := r.meta(trimmed); errors.Is(err, errQuit) {
				return nil
			}
			continue
		}
		r.Displayer.Display(r.Eval(line))
	}
}

// Eval evaluates one line and records it in the history.
func (r *Runner) Eval(line string) Outcome {
	if r.Session == nil {
		r.Session = interpreter.NewSession()
	}
	if r.DumpAST != nil {
		if node, err := parser.ParseString(line); err == nil {
			fmt.Fprintf(r.DumpAST, "%s\n", node.Dump())
			pretty.Fprintf(r.DumpAST, "%# v\n", node)
		}
	}
	v, err := r.Session.EvaluateLine(line)
	out := Outcome{Input: line, Value: v, Err: err}
	if r.History != nil {
		r.History.Add(out)
	}
	return out
}

const helpText = `Enter an expression like "(2 + 3) * 4" or an assignment like "x = 5;".
Commands:
  :vars     list variables
  :history  list recent lines
  :help     show this help
  :quit     exit
`

func (r *Runner) meta(cmd string) error {
	w := r.Out
	if w == nil {
		w = io.Discard
	}
	switch cmd {
	case ":q", ":quit":
		return errQuit
	case ":help":
		fmt.Fprint(w, helpText)
	case ":vars":
		env := r.Session.Env()
		for _, name := range env.Names() {
			v, _ := env.Get(name)
			fmt.Fprintf(w, "%s = %s\n", name, FormatValue(v))
		}
	case ":history":
		if r.History == nil {
			return nil
		}
		for i, o := range r.History.Entries() {
			fmt.Fprintf(w, "%3d  %s  => %s\n", i+1, o.Input, o)
		}
	default:
		fmt.Fprintf(w, "unknown command %q, try :help\n", cmd)
	}
	return nil
}
