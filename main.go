package main

import (
	"fmt"
	"os"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const usage = `usage: psh [-adhnx] [-c config] [expression...]

  -a         print the syntax tree of each line before evaluating it
  -c config  read configuration from this YAML file
  -d         debug logging
  -h         show this help
  -n         never use color
  -x         stop at the first failure

With an expression, evaluate it and exit. Otherwise read lines from stdin.
`

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	opts, optind, err := getopt.Getopts(args, "ac:dhnx")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, usage)
		return 2
	}
	var (
		configPath string
		dumpAST    bool
		debug      bool
		noColor    bool
		halt       bool
	)
	for _, opt := range opts {
		switch opt.Option {
		case 'a':
			dumpAST = true
		case 'c':
			configPath = opt.Value
		case 'd':
			debug = true
		case 'h':
			fmt.Print(usage)
			return 0
		case 'n':
			noColor = true
		case 'x':
			halt = true
		}
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "psh:", err)
		return 1
	}
	if debug {
		cfg.LogLevel = "debug"
	}
	if halt {
		cfg.HaltOnError = true
	}
	if noColor {
		cfg.Color = "never"
	}
	switch cfg.Color {
	case "never":
		color.NoColor = true
	case "always":
		color.NoColor = false
	}

	logger := newLogger(cfg.LogLevel, os.Stderr, !color.NoColor && isatty.IsTerminal(os.Stderr.Fd()))
	sess, err := NewSession(cfg, WithLogger(logger))
	if err != nil {
		fmt.Fprintln(os.Stderr, "psh:", err)
		return 1
	}

	r := newRepl(sess, cfg, os.Stdin, os.Stdout)
	r.dumpAST = dumpAST

	if rest := args[optind:]; len(rest) > 0 {
		line := strings.Join(rest, " ")
		r.in = strings.NewReader(line + "\n")
		r.cfg.HaltOnError = true
	} else {
		fd := os.Stdin.Fd()
		r.prompt = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}

	if err := r.run(); err != nil {
		return 1
	}
	return 0
}
