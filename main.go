package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"go.creack.net/calc/host"
	"go.creack.net/calc/interpreter"
	"go.creack.net/calc/server"
)

const usage = `usage: calc [-h] [-d] [-n] [-e expr]... [-s addr] [-t ttl]

  -e expr  evaluate expr and print the result, may be repeated
  -s addr  serve sessions over HTTP on addr
  -t ttl   drop HTTP sessions idle for longer than ttl (default 30m)
  -d       dump the parsed tree of each line
  -n       disable colors
  -h       show this help

Without -e or -s, lines are read from stdin.
`

type options struct {
	exprs    []string
	addr     string
	ttl      time.Duration
	dumpAST  bool
	noColor  bool
	showHelp bool
}

func parseArgs(args []string) (options, error) {
	opts := options{ttl: server.DefaultSessionTTL}

	parsed, optind, err := getopt.Getopts(args, "dhe:ns:t:")
	if err != nil {
		return opts, err
	}
	for _, opt := range parsed {
		switch opt.Option {
		case 'd':
			opts.dumpAST = true
		case 'h':
			opts.showHelp = true
		case 'e':
			opts.exprs = append(opts.exprs, opt.Value)
		case 'n':
			opts.noColor = true
		case 's':
			opts.addr = opt.Value
		case 't':
			ttl, err := time.ParseDuration(opt.Value)
			if err != nil || ttl <= 0 {
				return opts, fmt.Errorf("invalid -t parameter %q", opt.Value)
			}
			opts.ttl = ttl
		}
	}
	if rest := args[optind:]; len(rest) > 0 {
		return opts, fmt.Errorf("unexpected argument %q", rest[0])
	}
	if opts.addr != "" && len(opts.exprs) > 0 {
		return opts, errors.New("-e and -s are mutually exclusive")
	}
	return opts, nil
}

// runExprs evaluates each expression in one session and stops at the first
// error.
func runExprs(opts options, stdout, stderr io.Writer, colored bool) int {
	r := &host.Runner{
		Displayer: host.NewConsoleDisplay(stdout, stderr, colored),
		Session:   interpreter.NewSession(),
	}
	if opts.dumpAST {
		r.DumpAST = stdout
	}
	for _, expr := range opts.exprs {
		o := r.Eval(expr)
		r.Displayer.Display(o)
		if o.Err != nil {
			return 1
		}
	}
	return 0
}

func runREPL(opts options, stdin io.Reader, stdout, stderr io.Writer, colored, interactive bool) int {
	reader := host.NewConsoleReader(stdin)
	if interactive {
		reader.WithPrompt(stdout, "> ")
	}
	r := &host.Runner{
		Reader:    reader,
		Displayer: host.NewConsoleDisplay(stdout, stderr, colored),
		Session:   interpreter.NewSession(),
		History:   host.NewHistory(host.DefaultHistorySize),
		Out:       stdout,
	}
	if opts.dumpAST {
		r.DumpAST = stdout
	}
	if err := r.Run(context.Background()); err != nil {
		log.Printf("Fail: %s.", err)
		return 1
	}
	return 0
}

func serve(opts options) int {
	srv := server.New(server.Config{Addr: opts.addr, SessionTTL: opts.ttl})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		log.Printf("Fail: %s.", err)
		return 1
	case <-ctx.Done():
	}
	if err := srv.Shutdown(); err != nil {
		log.Printf("Shutdown: %s.", err)
		return 1
	}
	if err := <-errCh; err != nil {
		log.Printf("Fail: %s.", err)
		return 1
	}
	return 0
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, interactive bool) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "calc: %s\n%s", err, usage)
		return 2
	}
	if opts.showHelp {
		fmt.Fprint(stdout, usage)
		return 0
	}
	colored := !opts.noColor && !color.NoColor

	switch {
	case opts.addr != "":
		return serve(opts)
	case len(opts.exprs) > 0:
		return runExprs(opts, stdout, stderr, colored)
	default:
		return runREPL(opts, stdin, stdout, stderr, colored, interactive)
	}
}

func main() {
	log.SetFlags(0)
	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr, interactive))
}
