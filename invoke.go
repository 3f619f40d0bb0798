package main

import (
	"bytes"
	"os/exec"
	"time"
	"unicode/utf8"

	"github.com/oarkflow/log"
	"github.com/pkg/errors"
)

// An Invoker runs an external program and returns what it wrote to stdout.
type Invoker interface {
	Invoke(name string, args []string) (string, error)
}

// ExecInvoker runs programs from PATH and waits for them to exit.
// The exit status is deliberately ignored: a program that fails
// still yields whatever it printed.
type ExecInvoker struct {
	// Allow, if non-empty, is the set of program names that may be run.
	Allow  []string
	Logger *log.Logger
}

func (x *ExecInvoker) Invoke(name string, args []string) (string, error) {
	if !x.allowed(name) {
		return "", failf(SpawnFailure, "%s: not in the allowed command list", name)
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", wrapFailure(SpawnFailure, errors.WithStack(err), "%s", name)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err = cmd.Run()
	exit := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", wrapFailure(SpawnFailure, errors.Wrapf(err, "run %s", path), "%s", name)
		}
		exit = exitErr.ExitCode()
	}

	logger := x.logger()
	logger.Debug().Str("cmd", name).Int("args", len(args)).Int("exit", exit).
		Dur("elapsed", time.Since(start)).Msg("command finished")
	if stderr.Len() > 0 {
		logger.Debug().Str("cmd", name).Str("stderr", stderr.String()).Msg("command stderr")
	}
	if exit != 0 {
		logger.Warn().Str("cmd", name).Int("exit", exit).Msg("command exited with non-zero status")
	}

	out := stdout.Bytes()
	if !utf8.Valid(out) {
		return "", failf(DecodeFailure, "%s: output is not valid UTF-8", name)
	}
	return string(out), nil
}

func (x *ExecInvoker) allowed(name string) bool {
	if len(x.Allow) == 0 {
		return true
	}
	for _, a := range x.Allow {
		if a == name {
			return true
		}
	}
	return false
}

func (x *ExecInvoker) logger() *log.Logger {
	if x.Logger == nil {
		return &log.DefaultLogger
	}
	return x.Logger
}
