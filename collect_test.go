// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hlist_test

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"code.hybscloud.com/hlist"
)

func TestCollect(t *testing.T) {
	got, err := hlist.Collect[hlist.L3[int, int, int]](slices.Values([]int{1, 2, 3}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != hlist.Of3(1, 2, 3) {
		t.Fatalf("got %v, want [1 2 3]", got)
	}
}

func TestCollectEmpty(t *testing.T) {
	got, err := hlist.Collect[hlist.Nil](slices.Values([]string(nil)))
	if err != nil || got != (hlist.Nil{}) {
		t.Fatalf("got (%v, %v), want ([], nil)", got, err)
	}
}

func TestCollectInterfaceElements(t *testing.T) {
	got, err := hlist.Collect[hlist.L2[fmt.Stringer, any]](slices.Values([]celsius{1, 2}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "[1C 2C]" {
		t.Fatalf("got %v, want [1C 2C]", got)
	}
}

func TestCollectInterfacePanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "hlist: Collect: L must be a concrete list type" {
			t.Fatalf("got panic %v", r)
		}
	}()
	_, _ = hlist.Collect[hlist.List](slices.Values([]int{1}))
	t.Fatalf("Collect[List] did not panic")
}

func TestCollectLength(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		have int
		msg  string
	}{
		{"short", []int{1, 2}, 2, "hlist: Collect: not enough elements, have 2, want 3"},
		{"empty", nil, 0, "hlist: Collect: not enough elements, have 0, want 3"},
		{"long", []int{1, 2, 3, 4}, 4, "hlist: Collect: too many elements, want 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hlist.Collect[hlist.L3[int, int, int]](slices.Values(tt.in))
			if !errors.Is(err, hlist.ErrLength) {
				t.Fatalf("got %v, want ErrLength", err)
			}
			if got != (hlist.L3[int, int, int]{}) {
				t.Fatalf("got %v, want the zero list", got)
			}
			var le *hlist.LengthError
			if !errors.As(err, &le) || le.Want != 3 || le.Have != tt.have {
				t.Fatalf("got %v", err)
			}
			if err.Error() != tt.msg {
				t.Fatalf("got %q, want %q", err.Error(), tt.msg)
			}
		})
	}
}

func TestCollectStopsAtFirstExtra(t *testing.T) {
	pulled := 0
	seq := func(yield func(int) bool) {
		for i := range 10 {
			pulled++
			if !yield(i) {
				return
			}
		}
	}
	if _, err := hlist.Collect[hlist.L2[int, int]](seq); !errors.Is(err, hlist.ErrLength) {
		t.Fatalf("got %v, want ErrLength", err)
	}
	if pulled != 3 {
		t.Fatalf("pulled %d values, want 3", pulled)
	}
}

func TestCollectTypeMismatch(t *testing.T) {
	_, err := hlist.Collect[hlist.L2[int, string]](slices.Values([]int{1, 2}))
	var ce *hlist.CapabilityError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v, want *CapabilityError", err)
	}
	if ce.Op != "Collect" || ce.Index != 1 || ce.Have != "int" || ce.Want != "string" {
		t.Fatalf("got %+v", *ce)
	}
}

func TestCollectLongList(t *testing.T) {
	type ints13 = hlist.Cons[int, hlist.L12[int, int, int, int, int, int, int, int, int, int, int, int]]
	in := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	got, err := hlist.Collect[ints13](slices.Values(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seq, err := hlist.Values[int](got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out := slices.Collect(seq); !slices.Equal(out, in) {
		t.Fatalf("got %v, want %v", out, in)
	}
}
