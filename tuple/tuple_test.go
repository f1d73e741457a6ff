// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tuple_test

import (
	"testing"

	"code.hybscloud.com/hlist/tuple"
)

func TestNew(t *testing.T) {
	got := tuple.New3(1, "a", true)
	want := tuple.T3[int, string, bool]{V0: 1, V1: "a", V2: true}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if tuple.New0() != (tuple.T0{}) {
		t.Fatalf("New0() is not the empty tuple")
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"T0", tuple.T0{}.Len(), 0},
		{"T1", tuple.New1(1).Len(), 1},
		{"T3", tuple.T3[int, int, int]{}.Len(), 3},
		{"T12", tuple.T12[int, int, int, int, int, int, int, int, int, int, int, int]{}.Len(), 12},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("%s: got %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestValues(t *testing.T) {
	if v := tuple.New1("x").Values(); v != "x" {
		t.Fatalf("got %q, want x", v)
	}
	a, b, c := tuple.New3(1, "a", true).Values()
	if a != 1 || b != "a" || !c {
		t.Fatalf("got (%d, %q, %v), want (1, a, true)", a, b, c)
	}
	tu := tuple.New12(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)
	v0, _, _, _, _, _, _, _, _, _, _, v11 := tu.Values()
	if v0 != 0 || v11 != 11 {
		t.Fatalf("got (%d, %d), want (0, 11)", v0, v11)
	}
}

func TestComparable(t *testing.T) {
	if tuple.New2(1, "a") == tuple.New2(1, "b") {
		t.Fatalf("tuples with different components compare equal")
	}
	if tuple.New2(1, "a") != tuple.New2(1, "a") {
		t.Fatalf("tuples with equal components compare unequal")
	}
}
