package main

import (
	"reflect"
	"testing"
)

func TestEnv(t *testing.T) {
	env := newEnv()
	if _, ok := env.Get("a"); ok {
		t.Error("new env has a binding for a")
	}
	env.Set("b", Whole(1))
	env.Set("a", Str("x"))
	env.Set("b", Integer(-1))
	if v, ok := env.Get("b"); !ok || v != Integer(-1) {
		t.Errorf("Get(b) = %v, %v; want the last write", v, ok)
	}
	if got, want := env.Names(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %q, want %q", got, want)
	}
	if env.Len() != 2 {
		t.Errorf("Len() = %d, want 2", env.Len())
	}
}
