// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hlist

// Prepend returns a list with v as its first element and l as its tail.
// The tail is kept as is; no element of l is visited.
func Prepend[V any, L List](l L, v V) Cons[V, L] {
	return Cons[V, L]{Head: v, Tail: l}
}

// PopFront splits a non-empty list into its first element and the rest.
// It is the inverse of [Prepend]: PopFront(Prepend(l, v)) returns (v, l).
func PopFront[H any, T List](l Cons[H, T]) (H, T) {
	return l.Head, l.Tail
}
