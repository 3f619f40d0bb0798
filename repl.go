package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/kr/pretty"
)

// repl reads lines, evaluates them and prints the results.
type repl struct {
	sess *Session
	cfg  *Config
	in   io.Reader
	out  io.Writer

	prompt  bool // print the prompt before each line
	dumpAST bool

	valueColor *color.Color
	failColor  *color.Color
}

func newRepl(sess *Session, cfg *Config, in io.Reader, out io.Writer) *repl {
	return &repl{
		sess:       sess,
		cfg:        cfg,
		in:         in,
		out:        out,
		valueColor: color.New(color.FgGreen),
		failColor:  color.New(color.FgRed, color.Bold),
	}
}

// run returns nil at end of input. Otherwise it returns the failure
// that ended the session: a read error, or any failure when
// halt_on_error is set.
func (r *repl) run() error {
	sc := bufio.NewScanner(r.in)
	for {
		if r.prompt {
			io.WriteString(r.out, r.cfg.Prompt)
		}
		var line string
		var readErr error
		if sc.Scan() {
			line = sc.Text()
		} else if readErr = sc.Err(); readErr == nil {
			readErr = io.EOF
		}
		if readErr == nil && strings.TrimSpace(line) == "" {
			continue
		}

		v, err := r.eval(line, readErr)
		if err == io.EOF {
			if r.prompt {
				io.WriteString(r.out, "\n")
			}
			return nil
		}
		if err != nil {
			r.failColor.Fprintln(r.out, err.Error())
			if r.cfg.HaltOnError || KindOf(err) == InputFailure {
				return err
			}
			continue
		}
		r.valueColor.Fprintln(r.out, render(v))
	}
}

func (r *repl) eval(line string, readErr error) (Value, error) {
	if readErr != nil || !r.dumpAST {
		return r.sess.Feed(line, readErr)
	}
	expr, err := r.sess.Parse(line)
	if err != nil {
		return nil, err
	}
	pretty.Fprintf(r.out, "%# v\n", expr)
	printExpr(r.out, expr)
	return r.sess.Eval(expr)
}
