package main

import (
	"fmt"

	"github.com/oarkflow/log"
)

// eval.go is a tree-walking evaluator.
// Subexpressions are evaluated left to right and the first failure
// stops evaluation; bindings made before it are kept.

type Evaluator struct {
	env     *Env
	invoker Invoker
	logger  *log.Logger
}

func NewEvaluator(env *Env, invoker Invoker, logger *log.Logger) *Evaluator {
	if logger == nil {
		logger = &log.DefaultLogger
	}
	return &Evaluator{env: env, invoker: invoker, logger: logger}
}

func (ev *Evaluator) Eval(expr Expr) (Value, error) {
	switch e := expr.(type) {
	case *WholeExpr:
		return Whole(e.Value), nil
	case *StrExpr:
		return Str(e.Value), nil
	case *VarExpr:
		v, ok := ev.env.Get(e.Name)
		if !ok {
			return nil, failf(UnboundName, "no binding for %s", e.Name)
		}
		return v, nil
	case *BinExpr:
		return ev.evalBinExpr(e)
	case *IfExpr:
		c, err := ev.Eval(e.Cond)
		if err != nil {
			return nil, err
		}
		if truthy(c) {
			return ev.Eval(e.Then)
		}
		return ev.Eval(e.Else)
	case *LetExpr:
		v, err := ev.Eval(e.Val)
		if err != nil {
			return nil, err
		}
		ev.env.Set(e.Var, v)
		return v, nil
	case *CmdExpr:
		return ev.evalCmdExpr(e)
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
}

func (ev *Evaluator) evalBinExpr(e *BinExpr) (Value, error) {
	lv, err := ev.Eval(e.Left)
	if err != nil {
		return nil, err
	}
	rv, err := ev.Eval(e.Right)
	if err != nil {
		return nil, err
	}
	l, lok := lv.(Whole)
	r, rok := rv.(Whole)
	if !lok || !rok {
		return nil, failf(TypeMismatch, "operands to %s must be u64, found %s and %s", e.Op, lv.TypeName(), rv.TypeName())
	}
	// +, - and * wrap around modulo 2^64
	switch e.Op {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		if r == 0 {
			return nil, failf(ArithmeticFailure, "division by zero")
		}
		return l / r, nil
	default:
		return nil, failf(TypeMismatch, "operator %s is not defined on u64", e.Op)
	}
}

func (ev *Evaluator) evalCmdExpr(e *CmdExpr) (Value, error) {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		// an unbound bare word is passed through as itself, like a shell word
		if w, ok := a.(*VarExpr); ok {
			if _, bound := ev.env.Get(w.Name); !bound {
				args[i] = w.Name
				continue
			}
		}
		v, err := ev.Eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v.Text()
	}
	ev.logger.Debug().Str("cmd", e.Name).Int("args", len(args)).Msg("invoking command")
	out, err := ev.invoker.Invoke(e.Name, args)
	if err != nil {
		if KindOf(err) == 0 {
			err = wrapFailure(SpawnFailure, err, "%s", e.Name)
		}
		return nil, err
	}
	return Str(out), nil
}
