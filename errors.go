package main

import (
	"fmt"

	"github.com/pkg/errors"
)

type FailureKind int

const (
	ParseFailure FailureKind = iota + 1
	UnboundName
	TypeMismatch
	ArithmeticFailure
	SpawnFailure
	DecodeFailure
	InputFailure
)

var failureNames = [...]string{
	ParseFailure:      "ParseFailure",
	UnboundName:       "UnboundName",
	TypeMismatch:      "TypeMismatch",
	ArithmeticFailure: "ArithmeticFailure",
	SpawnFailure:      "SpawnFailure",
	DecodeFailure:     "DecodeFailure",
	InputFailure:      "InputFailure",
}

func (k FailureKind) String() string {
	if k <= 0 || int(k) >= len(failureNames) {
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
	return failureNames[k]
}

// A Failure is the single terminal outcome of parsing or evaluating a line.
// Err, if set, is the underlying cause.
type Failure struct {
	Kind FailureKind
	Msg  string
	Err  error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return f.Kind.String() + ": " + f.Msg + ": " + f.Err.Error()
	}
	return f.Kind.String() + ": " + f.Msg
}

func (f *Failure) Unwrap() error { return f.Err }

func failf(kind FailureKind, format string, args ...interface{}) *Failure {
	return &Failure{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func wrapFailure(kind FailureKind, err error, format string, args ...interface{}) *Failure {
	return &Failure{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf reports the kind of the Failure in err's chain,
// or 0 if there is none.
func KindOf(err error) FailureKind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return 0
}
