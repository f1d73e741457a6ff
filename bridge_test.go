// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hlist_test

import (
	"testing"

	"code.hybscloud.com/hlist"
	"code.hybscloud.com/hlist/tuple"
)

func TestToTuple(t *testing.T) {
	got := hlist.ToTuple3(hlist.Of3(1, 2.0, true))
	want := tuple.T3[int, float64, bool]{V0: 1, V1: 2.0, V2: true}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if got := hlist.ToTuple0(hlist.Nil{}); got != (tuple.T0{}) {
		t.Fatalf("got %+v, want {}", got)
	}
}

func TestFromTuple(t *testing.T) {
	got := hlist.FromTuple2(tuple.New2("a", 'b'))
	if got != hlist.Of2("a", 'b') {
		t.Fatalf("got %v, want [a 98]", got)
	}
	if got := hlist.FromTuple1(tuple.New1(7)); got != hlist.Of1(7) {
		t.Fatalf("got %v, want [7]", got)
	}
}

func TestTupleOrderPreserved(t *testing.T) {
	tu := hlist.ToTuple12(hlist.Of12(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11))
	if tu.V0 != 0 || tu.V5 != 5 || tu.V11 != 11 {
		t.Fatalf("got %+v", tu)
	}
}

// TestTupleRoundTrip converts every arity to a tuple and back.
func TestTupleRoundTrip(t *testing.T) {
	l1 := hlist.Of1(1)
	l2 := hlist.Of2(1, "b")
	l3 := hlist.Of3(1, "b", true)
	l4 := hlist.Of4(1, "b", true, 4.5)
	l5 := hlist.Of5(1, "b", true, 4.5, int8(5))
	l6 := hlist.Of6(1, "b", true, 4.5, int8(5), int16(6))
	l7 := hlist.Of7(1, "b", true, 4.5, int8(5), int16(6), int32(7))
	l8 := hlist.Of8(1, "b", true, 4.5, int8(5), int16(6), int32(7), int64(8))
	l9 := hlist.Of9(1, "b", true, 4.5, int8(5), int16(6), int32(7), int64(8), uint8(9))
	l10 := hlist.Of10(1, "b", true, 4.5, int8(5), int16(6), int32(7), int64(8), uint8(9), uint16(10))
	l11 := hlist.Of11(1, "b", true, 4.5, int8(5), int16(6), int32(7), int64(8), uint8(9), uint16(10), uint32(11))
	l12 := hlist.Of12(1, "b", true, 4.5, int8(5), int16(6), int32(7), int64(8), uint8(9), uint16(10), uint32(11), uint64(12))

	if got := hlist.FromTuple0(hlist.ToTuple0(hlist.Nil{})); got != (hlist.Nil{}) {
		t.Fatalf("arity 0: got %v", got)
	}
	if got := hlist.FromTuple1(hlist.ToTuple1(l1)); got != l1 {
		t.Fatalf("arity 1: got %v, want %v", got, l1)
	}
	if got := hlist.FromTuple2(hlist.ToTuple2(l2)); got != l2 {
		t.Fatalf("arity 2: got %v, want %v", got, l2)
	}
	if got := hlist.FromTuple3(hlist.ToTuple3(l3)); got != l3 {
		t.Fatalf("arity 3: got %v, want %v", got, l3)
	}
	if got := hlist.FromTuple4(hlist.ToTuple4(l4)); got != l4 {
		t.Fatalf("arity 4: got %v, want %v", got, l4)
	}
	if got := hlist.FromTuple5(hlist.ToTuple5(l5)); got != l5 {
		t.Fatalf("arity 5: got %v, want %v", got, l5)
	}
	if got := hlist.FromTuple6(hlist.ToTuple6(l6)); got != l6 {
		t.Fatalf("arity 6: got %v, want %v", got, l6)
	}
	if got := hlist.FromTuple7(hlist.ToTuple7(l7)); got != l7 {
		t.Fatalf("arity 7: got %v, want %v", got, l7)
	}
	if got := hlist.FromTuple8(hlist.ToTuple8(l8)); got != l8 {
		t.Fatalf("arity 8: got %v, want %v", got, l8)
	}
	if got := hlist.FromTuple9(hlist.ToTuple9(l9)); got != l9 {
		t.Fatalf("arity 9: got %v, want %v", got, l9)
	}
	if got := hlist.FromTuple10(hlist.ToTuple10(l10)); got != l10 {
		t.Fatalf("arity 10: got %v, want %v", got, l10)
	}
	if got := hlist.FromTuple11(hlist.ToTuple11(l11)); got != l11 {
		t.Fatalf("arity 11: got %v, want %v", got, l11)
	}
	if got := hlist.FromTuple12(hlist.ToTuple12(l12)); got != l12 {
		t.Fatalf("arity 12: got %v, want %v", got, l12)
	}
}

func TestListRoundTrip(t *testing.T) {
	t3 := tuple.New3(1, "x", false)
	if got := hlist.ToTuple3(hlist.FromTuple3(t3)); got != t3 {
		t.Fatalf("got %+v, want %+v", got, t3)
	}
	t12 := tuple.New12(1, "b", true, 4.5, int8(5), int16(6), int32(7), int64(8), uint8(9), uint16(10), uint32(11), uint64(12))
	if got := hlist.ToTuple12(hlist.FromTuple12(t12)); got != t12 {
		t.Fatalf("got %+v, want %+v", got, t12)
	}
}
