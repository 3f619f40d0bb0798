package main

import "strconv"

// A Value is the result of evaluating an Expr.
// The set is closed: Whole, Integer and Str.
type Value interface {
	// Text is the value as a process argument.
	Text() string
	TypeName() string
}

type Whole uint64
type Integer int64
type Str string

func (v Whole) Text() string   { return strconv.FormatUint(uint64(v), 10) }
func (v Integer) Text() string { return strconv.FormatInt(int64(v), 10) }
func (v Str) Text() string     { return string(v) }

func (Whole) TypeName() string   { return "u64" }
func (Integer) TypeName() string { return "i64" }
func (Str) TypeName() string     { return "str" }

// truthy is the coercion used by if.
func truthy(v Value) bool {
	switch v := v.(type) {
	case Whole:
		return v > 0
	case Integer:
		return v != 0
	case Str:
		return v != ""
	default:
		panic("unhandled value type: " + v.TypeName())
	}
}

// render formats a value for the read loop, like "7: u64".
func render(v Value) string {
	return v.Text() + ": " + v.TypeName()
}
