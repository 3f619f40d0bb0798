package main

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// format.go converts an AST back to source code

type formatter struct {
	buf bytes.Buffer
}

func printExpr(w io.Writer, expr Expr) {
	var f formatter
	f.visitExpr(expr, 0)
	f.write("\n")
	f.buf.WriteTo(w)
}

func formatExpr(expr Expr) string {
	var f formatter
	f.visitExpr(expr, 0)
	return f.buf.String()
}

// binOpPrec is shared with the parser.
var binOpPrec = map[string]int{
	"+": 1,
	"-": 1,
	"*": 2,
	"/": 2,
}

// operands of a command and anything nested in a binop
// that isn't itself a binop or a leaf need parentheses
const argPrec = 10

func (f *formatter) visitExpr(e Expr, prec int) {
	switch e := e.(type) {
	case *VarExpr:
		f.write(e.Name)
	case *WholeExpr:
		f.write(strconv.FormatUint(e.Value, 10))
	case *StrExpr:
		f.write(strconv.Quote(e.Value))
	case *BinExpr:
		op := binOpPrec[e.Op]
		if op < prec {
			f.write("(")
		}
		f.visitExpr(e.Left, op)
		f.write(" " + e.Op + " ")
		// left associative, so an equal-precedence right operand
		// must keep its parens
		f.visitExpr(e.Right, op+1)
		if op < prec {
			f.write(")")
		}
	case *CmdExpr:
		if prec > 0 {
			f.write("(")
		}
		f.write(e.Name)
		for _, a := range e.Args {
			f.write(" ")
			f.visitExpr(a, argPrec)
		}
		if prec > 0 {
			f.write(")")
		}
	case *LetExpr:
		if prec > 0 {
			f.write("(")
		}
		f.write("let " + e.Var + " = ")
		f.visitExpr(e.Val, 0)
		if prec > 0 {
			f.write(")")
		}
	case *IfExpr:
		if prec > 0 {
			f.write("(")
		}
		f.write("if ")
		f.visitExpr(e.Cond, 0)
		f.write(" then ")
		f.visitExpr(e.Then, 0)
		f.write(" else ")
		f.visitExpr(e.Else, 0)
		if prec > 0 {
			f.write(")")
		}
	default:
		panic(fmt.Sprintf("unhandled case in formatter.visitExpr: %T", e))
	}
}

func (f *formatter) write(s string) {
	f.buf.WriteString(s)
}
