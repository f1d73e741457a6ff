// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hlist_test

import (
	"fmt"
	"testing"

	"code.hybscloud.com/hlist"
)

// long13 is a list one element longer than the generated arity bound.
type long13 = hlist.Cons[complex64, hlist.L12[int8, int16, int32, int64, uint8, uint16, uint32, uint64, float32, float64, string, bool]]

func newLong13() long13 {
	return hlist.Prepend(hlist.Of12(int8(1), int16(2), int32(3), int64(4), uint8(5), uint16(6), uint32(7), uint64(8), float32(9), float64(10), "eleven", true), complex64(0))
}

func TestNil(t *testing.T) {
	var n hlist.Nil
	if got := n.Len(); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
	if !n.IsEmpty() {
		t.Fatalf("Nil is not empty")
	}
	if n != hlist.Of0() {
		t.Fatalf("Of0() != Nil{}")
	}
}

func TestConsLen(t *testing.T) {
	l := hlist.New(1, hlist.New("a", hlist.New(true, hlist.Nil{})))
	if got := l.Len(); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
	if l.IsEmpty() {
		t.Fatalf("non-empty list reports empty")
	}
	if got := l.Tail.Tail.Len(); got != 1 {
		t.Fatalf("tail length: got %d, want 1", got)
	}
}

func TestLenFromType(t *testing.T) {
	if got := hlist.Len[hlist.Nil](); got != 0 {
		t.Fatalf("Nil: got %d, want 0", got)
	}
	if got := hlist.Len[hlist.L3[int, string, bool]](); got != 3 {
		t.Fatalf("L3: got %d, want 3", got)
	}
	if got := hlist.Len[long13](); got != 13 {
		t.Fatalf("long13: got %d, want 13", got)
	}
}

func TestLenInterfacePanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "hlist: Len: L must be a concrete list type" {
			t.Fatalf("got panic %v", r)
		}
	}()
	hlist.Len[hlist.List]()
	t.Fatalf("Len[List] did not panic")
}

func TestLenIgnoresContents(t *testing.T) {
	a := hlist.Of2(0, "")
	b := hlist.Of2(1000, "a much longer string")
	if a.Len() != b.Len() {
		t.Fatalf("lengths differ: %d != %d", a.Len(), b.Len())
	}
}

func TestOfMatchesNestedConstruction(t *testing.T) {
	got := hlist.Of3(1, "a", true)
	want := hlist.New(1, hlist.New("a", hlist.New(true, hlist.Nil{})))
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSplit(t *testing.T) {
	h, tail := hlist.Of3(1, "a", true).Split()
	if h != 1 {
		t.Fatalf("head: got %d, want 1", h)
	}
	if tail != hlist.Of2("a", true) {
		t.Fatalf("tail: got %v, want [a true]", tail)
	}
}

func TestPrepend(t *testing.T) {
	if got := hlist.Prepend(hlist.Nil{}, 7); got != hlist.Of1(7) {
		t.Fatalf("got %v, want [7]", got)
	}
	if got := hlist.Prepend(hlist.Of2("a", true), 1); got != hlist.Of3(1, "a", true) {
		t.Fatalf("got %v, want [1 a true]", got)
	}
}

func TestPopFront(t *testing.T) {
	v, rest := hlist.PopFront(hlist.Of3(1, "a", true))
	if v != 1 || rest != hlist.Of2("a", true) {
		t.Fatalf("got (%d, %v), want (1, [a true])", v, rest)
	}
	v2, rest2 := hlist.PopFront(hlist.Prepend(rest, 9))
	if v2 != 9 || rest2 != rest {
		t.Fatalf("PopFront(Prepend(l, v)) = (%d, %v), want (9, %v)", v2, rest2, rest)
	}
}

func TestValueSemantics(t *testing.T) {
	a := hlist.Of2(1, "x")
	b := a
	b.Head = 2
	b.Tail.Head = "y"
	if a != hlist.Of2(1, "x") {
		t.Fatalf("copy modified the original: %v", a)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		l    fmt.Stringer
		want string
	}{
		{"nil", hlist.Nil{}, "[]"},
		{"one", hlist.Of1("x"), "[x]"},
		{"mixed", hlist.Of3(1, 2.5, true), "[1 2.5 true]"},
		{"nested", hlist.Of2(hlist.Of1(1), "x"), "[[1] x]"},
		{"long", newLong13(), "[(0+0i) 1 2 3 4 5 6 7 8 9 10 eleven true]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.l.String(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
			if got := fmt.Sprint(tt.l); got != tt.want {
				t.Fatalf("Sprint: got %q, want %q", got, tt.want)
			}
		})
	}
}
