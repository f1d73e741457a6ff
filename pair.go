// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hlist

// Pair holds two values.
// [Zip3] and its siblings pair up elements at the same position of two lists.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// MakePair creates a Pair from two values.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// Swap returns the pair with its components exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{Fst: p.Snd, Snd: p.Fst}
}
