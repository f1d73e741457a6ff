// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hlist

// Fold applies f to every element front to back, threading an accumulator.
// Elements cross the [Erased] boundary; use [FoldAs] when every element is
// expected to satisfy the same type.
func Fold[A any](l List, init A, f func(acc A, i int, e Erased) A) A {
	acc := init
	l.each(0, func(i int, e Erased) bool {
		acc = f(acc, i, e)
		return true
	})
	return acc
}

// FoldRight is like [Fold] but visits elements back to front.
func FoldRight[A any](l List, init A, f func(acc A, i int, e Erased) A) A {
	acc := init
	l.eachBackward(0, func(i int, e Erased) bool {
		acc = f(acc, i, e)
		return true
	})
	return acc
}

// as recovers e as a C. A nil interface element satisfies C only when C is
// any itself.
func as[C any](e Erased) (C, bool) {
	c, ok := e.(C)
	if !ok && e == nil {
		_, ok = any((*C)(nil)).(*any)
	}
	return c, ok
}

// checkAll verifies that every element of l satisfies C.
// Nothing is visited by the caller until the whole list passed.
func checkAll[C any](op string, l List) error {
	var err error
	l.each(0, func(i int, e Erased) bool {
		if _, ok := as[C](e); !ok {
			err = &CapabilityError{Op: op, Index: i, Have: l.typeAt(i), Want: typeName[C]()}
			return false
		}
		return true
	})
	return err
}

// FoldAs folds over a list whose elements all satisfy C, typically an
// interface such as fmt.Stringer. If some element does not, f is never called
// and a [*CapabilityError] names the first offending element. A nil element
// of interface type satisfies no capability other than C = any, where it is
// passed on as nil.
func FoldAs[C, A any](l List, init A, f func(acc A, c C) A) (A, error) {
	if err := checkAll[C]("FoldAs", l); err != nil {
		return init, err
	}
	acc := init
	l.each(0, func(_ int, e Erased) bool {
		c, _ := as[C](e)
		acc = f(acc, c)
		return true
	})
	return acc, nil
}

// Visit calls f for every element with its position, as a value of type C.
// Like [FoldAs], every element is checked before the first call, and nil
// interface elements pass only when C is any.
func Visit[C any](l List, f func(i int, c C)) error {
	if err := checkAll[C]("Visit", l); err != nil {
		return err
	}
	l.each(0, func(i int, e Erased) bool {
		c, _ := as[C](e)
		f(i, c)
		return true
	})
	return nil
}
