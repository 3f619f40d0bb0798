package main

import (
	"io"
	"strconv"
)

// parse.go is a recursive descent parser over the lexer's tokens.
//
//	expr    = "let" ident "=" expr
//	        | "if" expr "then" expr "else" expr
//	        | operand { op operand }
//	operand = ident value { value }    (each value preceded by whitespace)
//	        | value
//	value   = number | string | ident | "(" expr ")"
//
// An identifier followed by whitespace and something that can start a value
// is a command; anything else after it ends the operand.

type parser struct {
	lex lexer
	tok token
}

// parse reads one line of input and returns its syntax tree.
// The whole input must be consumed.
func parse(r io.Reader) (Expr, error) {
	p := new(parser)
	p.lex.Init(r)
	p.next()
	e, err := p.expr()
	if err == nil && p.tok.kind != tEOF {
		err = p.errorf("unexpected %s", p.tok.describe())
	}
	if p.lex.err != nil {
		return nil, wrapFailure(ParseFailure, p.lex.err, "column %d", p.tok.col)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (p *parser) next() {
	p.tok = p.lex.Lex()
}

func (p *parser) errorf(format string, args ...interface{}) *Failure {
	f := failf(ParseFailure, format, args...)
	f.Msg = "column " + strconv.Itoa(p.tok.col) + ": " + f.Msg
	return f
}

func (p *parser) expect(kind tokenKind, text string) error {
	if p.tok.kind != kind || (text != "" && p.tok.text != text) {
		want := text
		if want == "" {
			want = kind.String()
		}
		return p.errorf("expected %s, found %s", want, p.tok.describe())
	}
	p.next()
	return nil
}

func (p *parser) expr() (Expr, error) {
	switch p.tok.kind {
	case kLet:
		return p.assign()
	case kIf:
		return p.cond()
	default:
		return p.binop(1)
	}
}

func (p *parser) assign() (Expr, error) {
	p.next() // let
	name := p.tok.text
	if err := p.expect(tIdent, ""); err != nil {
		return nil, err
	}
	if err := p.expect(tPunct, "="); err != nil {
		return nil, err
	}
	val, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &LetExpr{Var: name, Val: val}, nil
}

func (p *parser) cond() (Expr, error) {
	p.next() // if
	c, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(kThen, ""); err != nil {
		return nil, err
	}
	t, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(kElse, ""); err != nil {
		return nil, err
	}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &IfExpr{Cond: c, Then: t, Else: e}, nil
}

// binop parses a chain of operands joined by operators of precedence
// at least prec. The chain is consumed left to right in a loop;
// only the right operand of a tighter operator recurses.
func (p *parser) binop(prec int) (Expr, error) {
	left, err := p.operand()
	if err != nil {
		return nil, err
	}
	for {
		op := p.tok.text
		opPrec, ok := binOpPrec[op]
		if p.tok.kind != tPunct || !ok || opPrec < prec {
			return left, nil
		}
		p.next()
		right, err := p.binop(opPrec + 1)
		if err != nil {
			return nil, err
		}
		left = &BinExpr{Op: op, Left: left, Right: right}
	}
}

func (p *parser) operand() (Expr, error) {
	if p.tok.kind != tIdent {
		return p.value()
	}
	name := p.tok.text
	p.next()
	if !p.startsArg() {
		return &VarExpr{Name: name}, nil
	}
	cmd := &CmdExpr{Name: name}
	for p.startsArg() {
		arg, err := p.value()
		if err != nil {
			return nil, err
		}
		cmd.Args = append(cmd.Args, arg)
	}
	return cmd, nil
}

// startsArg reports whether the current token begins a command argument.
func (p *parser) startsArg() bool {
	if !p.tok.spaced {
		return false
	}
	switch p.tok.kind {
	case tIdent, tNumber, tString:
		return true
	case tPunct:
		return p.tok.text == "("
	}
	return false
}

func (p *parser) value() (Expr, error) {
	switch p.tok.kind {
	case tNumber:
		n, err := strconv.ParseUint(p.tok.text, 10, 64)
		if err != nil {
			return nil, p.errorf("malformed number %q", p.tok.text)
		}
		p.next()
		return &WholeExpr{Value: n}, nil
	case tString:
		s, err := strconv.Unquote(p.tok.text)
		if err != nil {
			return nil, p.errorf("malformed string %s", p.tok.text)
		}
		p.next()
		return &StrExpr{Value: s}, nil
	case tIdent:
		name := p.tok.text
		p.next()
		return &VarExpr{Name: name}, nil
	case tPunct:
		if p.tok.text == "(" {
			p.next()
			e, err := p.expr()
			if err != nil {
				return nil, err
			}
			if err := p.expect(tPunct, ")"); err != nil {
				return nil, err
			}
			return e, nil
		}
	}
	return nil, p.errorf("unexpected %s", p.tok.describe())
}

func (k tokenKind) String() string {
	switch k {
	case tEOF:
		return "end of line"
	case tIdent:
		return "identifier"
	case tNumber:
		return "number"
	case tString:
		return "string"
	case kLet:
		return "let"
	case kIf:
		return "if"
	case kThen:
		return "then"
	case kElse:
		return "else"
	default:
		return "punctuation"
	}
}

func (t token) describe() string {
	if t.kind == tEOF {
		return "end of line"
	}
	return strconv.Quote(t.text)
}
