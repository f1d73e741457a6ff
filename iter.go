// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hlist

import "iter"

// All returns an iterator over positions and elements, front to back.
func All(l List) iter.Seq2[int, Erased] {
	return func(yield func(int, Erased) bool) {
		l.each(0, yield)
	}
}

// Backward returns an iterator over positions and elements, back to front.
func Backward(l List) iter.Seq2[int, Erased] {
	return func(yield func(int, Erased) bool) {
		l.eachBackward(0, yield)
	}
}

// Elem returns the element at position i, or false if i is out of range.
func Elem(l List, i int) (Erased, bool) {
	if i < 0 {
		return nil, false
	}
	return l.elem(i)
}

// Values returns an iterator over a list whose elements all satisfy E.
// The check runs once, before the iterator is returned. As with [Visit], a
// nil interface element passes only when E is any.
//
// Example:
//
//	seq, err := Values[int](Of3(1, 2, 3))
//	for v := range seq { ... } // 1, 2, 3
func Values[E any](l List) (iter.Seq[E], error) {
	if err := checkAll[E]("Values", l); err != nil {
		return nil, err
	}
	return func(yield func(E) bool) {
		l.each(0, func(_ int, e Erased) bool {
			v, _ := as[E](e)
			return yield(v)
		})
	}, nil
}
