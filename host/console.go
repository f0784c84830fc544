package host

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ConsoleReader reads one input per line.
type ConsoleReader struct {
	scanner *bufio.Scanner

	promptOut io.Writer
	prompt    string
}

// MaxLineSize is the longest line a ConsoleReader accepts.
const MaxLineSize = 1 << 20

func NewConsoleReader(in io.Reader) *ConsoleReader {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)
	return &ConsoleReader{scanner: scanner}
}

// WithPrompt makes the reader write prompt to w before each line.
func (c *ConsoleReader) WithPrompt(w io.Writer, prompt string) *ConsoleReader {
	c.promptOut = w
	c.prompt = prompt
	return c
}

func (c *ConsoleReader) ReadInput() (string, error) {
	if c.promptOut != nil {
		fmt.Fprint(c.promptOut, c.prompt)
	}
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.scanner.Text(), nil
}

// ConsoleDisplay writes values to stdout and errors to stderr.
type ConsoleDisplay struct {
	stdout io.Writer
	stderr io.Writer

	okColor   *color.Color
	failColor *color.Color
}

func NewConsoleDisplay(stdout, stderr io.Writer, colored bool) *ConsoleDisplay {
	d := &ConsoleDisplay{
		stdout:    stdout,
		stderr:    stderr,
		okColor:   color.New(color.FgGreen),
		failColor: color.New(color.FgRed, color.Bold),
	}
	if colored {
		d.okColor.EnableColor()
		d.failColor.EnableColor()
	} else {
		d.okColor.DisableColor()
		d.failColor.DisableColor()
	}
	return d
}

func (d *ConsoleDisplay) Display(o Outcome) {
	if o.Err != nil {
		d.failColor.Fprintf(d.stderr, "error[%s]: %s\n", o.Kind(), Message(o.Err))
		return
	}
	d.okColor.Fprintf(d.stdout, "= %s\n", FormatValue(o.Value))
}
