// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hlist_test

import (
	"math"
	"testing"

	"code.hybscloud.com/hlist"
)

func double(v int) int    { return v * 2 }
func length(s string) int { return len(s) }
func negate(b bool) bool  { return !b }

func TestStructuralAllocations(t *testing.T) {
	l := hlist.Of3(1, "a", true)
	var out hlist.L4[string, int, string, bool]
	allocs := testing.AllocsPerRun(100, func() {
		v, rest := hlist.PopFront(l)
		out = hlist.Prepend(hlist.Prepend(rest, v), "x")
	})
	if allocs > 0 {
		t.Errorf("Prepend/PopFront allocs = %v; want 0", allocs)
	}
	_ = out
}

func TestGeneratedAllocations(t *testing.T) {
	l := hlist.Of4(1, "a", true, 2.5)
	tests := []struct {
		name string
		fn   func()
	}{
		{"Append", func() { _ = hlist.Append4(l, 'x') }},
		{"Pop", func() { _, _ = hlist.Pop4(l) }},
		{"Extend", func() { _ = hlist.Extend4(l, l) }},
		{"Reverse", func() { _ = hlist.Reverse4(l) }},
		{"Map", func() { _ = hlist.Map4(l, double, length, negate, math.Abs) }},
		{"Zip", func() { _, _ = hlist.Unzip4(hlist.Zip4(l, l)) }},
		{"At", func() { _ = hlist.At3(l) }},
		{"Remove", func() { _, _ = hlist.Remove2(l) }},
		{"Refs", func() { *hlist.At0(hlist.Refs4(&l)) = 1 }},
		{"Tuple", func() { _ = hlist.FromTuple4(hlist.ToTuple4(l)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if allocs := testing.AllocsPerRun(100, tt.fn); allocs > 0 {
				t.Errorf("%s allocs = %v; want 0", tt.name, allocs)
			}
		})
	}
}
