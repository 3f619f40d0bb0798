package main

import (
	"strings"
	"testing"

	"github.com/kr/pretty"
)

func num(n uint64) Expr      { return &WholeExpr{Value: n} }
func str(s string) Expr      { return &StrExpr{Value: s} }
func ident(name string) Expr { return &VarExpr{Name: name} }
func bin(op string, l, r Expr) Expr {
	return &BinExpr{Op: op, Left: l, Right: r}
}
func cmd(name string, args ...Expr) Expr {
	return &CmdExpr{Name: name, Args: args}
}

var parseTests = []struct {
	input string
	want  Expr
}{
	{"42", num(42)},
	{"18446744073709551615", num(1<<64 - 1)},
	{`"hello world"`, str("hello world")},
	{`""`, str("")},
	{`"tab\there"`, str("tab\there")},
	{"y", ident("y")},
	{"x1", ident("x1")},
	{"ls", ident("ls")},
	{"  ( 7 )  ", num(7)},
	{"let x = 3 + 4", &LetExpr{Var: "x", Val: bin("+", num(3), num(4))}},
	{"let x=3", &LetExpr{Var: "x", Val: num(3)}},
	{"let a = let b = 1", &LetExpr{Var: "a", Val: &LetExpr{Var: "b", Val: num(1)}}},
	{"if 0 then 1 else 2", &IfExpr{Cond: num(0), Then: num(1), Else: num(2)}},
	{"if x then echo a else echo b", &IfExpr{
		Cond: ident("x"),
		Then: cmd("echo", ident("a")),
		Else: cmd("echo", ident("b")),
	}},
	{"if 1 then if 0 then 1 else 2 else 3", &IfExpr{
		Cond: num(1),
		Then: &IfExpr{Cond: num(0), Then: num(1), Else: num(2)},
		Else: num(3),
	}},
	{"3 / 0", bin("/", num(3), num(0))},
	{"(1 + 2) * 3", bin("*", bin("+", num(1), num(2)), num(3))},
	{"1 + 2 * 3", bin("+", num(1), bin("*", num(2), num(3)))},
	{"10 - 3 - 2", bin("-", bin("-", num(10), num(3)), num(2))},
	{"8 / 4 / 2", bin("/", bin("/", num(8), num(4)), num(2))},
	{"x+1", bin("+", ident("x"), num(1))},
	{"x +1", bin("+", ident("x"), num(1))},
	{"echo hello", cmd("echo", ident("hello"))},
	{`echo "a b" 3 x`, cmd("echo", str("a b"), num(3), ident("x"))},
	{"echo (1 + 2) x", cmd("echo", bin("+", num(1), num(2)), ident("x"))},
	{"echo 1 + 2", bin("+", cmd("echo", num(1)), num(2))},
	{"let out = date", &LetExpr{Var: "out", Val: ident("date")}},
	{"let out = uname a", &LetExpr{Var: "out", Val: cmd("uname", ident("a"))}},
	{"(echo 1) * (wc x)", bin("*", cmd("echo", num(1)), cmd("wc", ident("x")))},
	{"echo (echo hi)", cmd("echo", cmd("echo", ident("hi")))},
}

func TestParse(t *testing.T) {
	for _, tt := range parseTests {
		got, err := parse(strings.NewReader(tt.input))
		if err != nil {
			t.Errorf("parse(%q) failed: %v", tt.input, err)
			continue
		}
		if diff := pretty.Diff(got, tt.want); len(diff) > 0 {
			t.Errorf("parse(%q) = %# v\ndiff: %v", tt.input, pretty.Formatter(got), diff)
		}
	}
}

var parseErrorTests = []string{
	"",
	"   ",
	"1 +",
	"(1",
	"1)",
	"1 2",
	"x = 3",
	"let = 3",
	"let 3 = 3",
	"let if = 3",
	"if 1 then 2",
	"if 1 2 else 3",
	"then",
	"3abc",
	`"abc`,
	"99999999999999999999",
	"echo(1)",
	"echo @",
	"1 % 2",
	"-1",
}

func TestParseErrors(t *testing.T) {
	for _, input := range parseErrorTests {
		e, err := parse(strings.NewReader(input))
		if err == nil {
			t.Errorf("parse(%q) = %# v, want a parse failure", input, pretty.Formatter(e))
			continue
		}
		if k := KindOf(err); k != ParseFailure {
			t.Errorf("parse(%q): failure kind = %v, want ParseFailure (%v)", input, k, err)
		}
	}
}

func TestParseErrorColumn(t *testing.T) {
	_, err := parse(strings.NewReader("1 + )"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "column 5") {
		t.Errorf("error %q does not mention column 5", err)
	}
}

func TestParseDeepNesting(t *testing.T) {
	const depth = 500
	input := strings.Repeat("(", depth) + "1" + strings.Repeat(")", depth)
	got, err := parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if diff := pretty.Diff(got, num(1)); len(diff) > 0 {
		t.Errorf("diff: %v", diff)
	}

	long := "1" + strings.Repeat(" + 1", depth)
	e, err := parse(strings.NewReader(long))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	n := 0
	for {
		b, ok := e.(*BinExpr)
		if !ok {
			break
		}
		n++
		e = b.Left
	}
	if n != depth {
		t.Errorf("left spine has %d binops, want %d", n, depth)
	}
}
