package main

import (
	"strings"
	"testing"

	"github.com/kr/pretty"
)

var formatTests = []struct {
	input string
	want  string
}{
	{"1+2*3", "1 + 2 * 3"},
	{"(1 + 2) * 3", "(1 + 2) * 3"},
	{"10 - (3 - 2)", "10 - (3 - 2)"},
	{"(10 - 3) - 2", "10 - 3 - 2"},
	{`echo   "a\"b"  (1+1) x`, `echo "a\"b" (1 + 1) x`},
	{"echo 1 + 2", "(echo 1) + 2"},
	{"let x=if a then b else c", "let x = if a then b else c"},
	{"echo (let x = 1)", "echo (let x = 1)"},
	{"if (let a = 1) then 2 else 3", "if let a = 1 then 2 else 3"},
}

func TestFormat(t *testing.T) {
	for _, tt := range formatTests {
		e, err := parse(strings.NewReader(tt.input))
		if err != nil {
			t.Errorf("parse(%q) failed: %v", tt.input, err)
			continue
		}
		if got := formatExpr(e); got != tt.want {
			t.Errorf("formatExpr(parse(%q)) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// Formatting a tree and parsing the result gives back the same tree.
func TestFormatReparse(t *testing.T) {
	for _, tt := range parseTests {
		src := formatExpr(tt.want)
		got, err := parse(strings.NewReader(src))
		if err != nil {
			t.Errorf("parse(%q) failed: %v", src, err)
			continue
		}
		if diff := pretty.Diff(got, tt.want); len(diff) > 0 {
			t.Errorf("reparse of %q differs: %v", src, diff)
		}
	}
}
