// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hlist

import "iter"

// Collect builds a list of type L from a sequence of exactly Len[L]()
// values of type E, in order. Every element type of L must accept an E.
//
// A short or long sequence yields a [*LengthError]; an element type that
// does not accept E yields a [*CapabilityError]. On error the zero L is
// returned. The sequence is not consumed past the first extra value.
// L must be a concrete list type, not the List interface itself; Collect
// panics otherwise.
//
// Example:
//
//	l, err := Collect[L3[int, int, int]](slices.Values([]int{1, 2, 3}))
func Collect[L List, E any](seq iter.Seq[E]) (L, error) {
	var zero L
	if any(zero) == nil {
		panic("hlist: Collect: L must be a concrete list type")
	}
	var cur List = zero
	n := zero.Len()
	i := 0
	for v := range seq {
		if i == n {
			return zero, &LengthError{Op: "Collect", Want: n, Have: n + 1}
		}
		next, ok := cur.with(i, v)
		if !ok {
			return zero, &CapabilityError{Op: "Collect", Index: i, Have: typeName[E](), Want: cur.typeAt(i)}
		}
		cur = next
		i++
	}
	if i < n {
		return zero, &LengthError{Op: "Collect", Want: n, Have: i}
	}
	return cur.(L), nil
}
