// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hlist

// Erased represents a type-erased element at the boundary of operations
// that work on lists of any length. Concrete types are recovered via type
// assertions against the statically known element type.
type Erased = any

// List is the capability marker for heterogeneous lists.
// It is implemented only by [Nil] and [Cons]; the unexported methods seal it,
// so a type parameter constrained by List is always one of the two shapes.
type List interface {
	// Len returns the count of elements. The result depends on the type only.
	Len() int

	// IsEmpty reports whether the list is [Nil].
	IsEmpty() bool

	// each yields elements front to back starting at position i.
	each(i int, yield func(int, Erased) bool) bool

	// eachBackward yields elements back to front; i is the position of the receiver's head.
	eachBackward(i int, yield func(int, Erased) bool) bool

	// elem returns the element at position i.
	elem(i int) (Erased, bool)

	// with returns a copy with the element at position i replaced by v.
	// ok is false if v is not assignable to that element's type.
	with(i int, v Erased) (List, bool)

	// typeAt returns the static type name of the element at position i.
	typeAt(i int) string

	// find locates elements whose static type is selected by m.
	// pos is the first matching position or -1; n counts all matches.
	find(m matcher, i int) (pos, n int)
}

// Nil is the empty heterogeneous list.
// It is a zero-size value and terminates every [Cons] chain.
type Nil struct{}

// Len returns 0.
func (Nil) Len() int { return 0 }

// IsEmpty returns true.
func (Nil) IsEmpty() bool { return true }

func (Nil) each(int, func(int, Erased) bool) bool         { return true }
func (Nil) eachBackward(int, func(int, Erased) bool) bool { return true }
func (Nil) elem(int) (Erased, bool)                       { return nil, false }
func (n Nil) with(int, Erased) (List, bool)               { return n, false }
func (Nil) typeAt(int) string                             { return "" }
func (Nil) find(matcher, int) (int, int)                  { return -1, 0 }

// Cons is a heterogeneous list with a head value and a tail list.
// Cons[int, Cons[float64, Cons[bool, Nil]]] holds an int, a float64 and a
// bool, in that order. The constraint on T rejects at compile time any tail
// that is not itself a list.
type Cons[H any, T List] struct {
	Head H
	Tail T
}

// New constructs a list from a head value and a tail list.
func New[H any, T List](head H, tail T) Cons[H, T] {
	return Cons[H, T]{Head: head, Tail: tail}
}

// Split returns the head and the tail of the list.
func (c Cons[H, T]) Split() (H, T) {
	return c.Head, c.Tail
}

// Len returns 1 plus the length of the tail.
func (c Cons[H, T]) Len() int { return 1 + c.Tail.Len() }

// IsEmpty returns false.
func (Cons[H, T]) IsEmpty() bool { return false }

func (c Cons[H, T]) each(i int, yield func(int, Erased) bool) bool {
	if !yield(i, c.Head) {
		return false
	}
	return c.Tail.each(i+1, yield)
}

func (c Cons[H, T]) eachBackward(i int, yield func(int, Erased) bool) bool {
	if !c.Tail.eachBackward(i+1, yield) {
		return false
	}
	return yield(i, c.Head)
}

func (c Cons[H, T]) elem(i int) (Erased, bool) {
	if i == 0 {
		return c.Head, true
	}
	return c.Tail.elem(i - 1)
}

func (c Cons[H, T]) with(i int, v Erased) (List, bool) {
	if i == 0 {
		h, ok := v.(H)
		if !ok {
			// A nil v is the zero value of an interface-typed head.
			var zero H
			if v != nil || any(zero) != nil {
				return c, false
			}
		}
		c.Head = h
		return c, true
	}
	tail, ok := c.Tail.with(i-1, v)
	if !ok {
		return c, false
	}
	c.Tail = tail.(T)
	return c, true
}

func (c Cons[H, T]) typeAt(i int) string {
	if i == 0 {
		return typeName[H]()
	}
	return c.Tail.typeAt(i - 1)
}

func (c Cons[H, T]) find(m matcher, i int) (int, int) {
	pos, n := c.Tail.find(m, i+1)
	if m.match((*H)(nil)) {
		return i, n + 1
	}
	return pos, n
}

// referrer is implemented by *Nil and every *Cons.
type referrer interface {
	// refAt returns a pointer to the element at position i, or nil.
	refAt(i int) Erased
}

func (*Nil) refAt(int) Erased { return nil }

func (c *Cons[H, T]) refAt(i int) Erased {
	if i == 0 {
		return &c.Head
	}
	return any(&c.Tail).(referrer).refAt(i - 1)
}

// Len returns the length of the list type L without inspecting any value.
// L must be a concrete list type, not the List interface itself; Len
// panics otherwise.
func Len[L List]() int {
	var l L
	if any(l) == nil {
		panic("hlist: Len: L must be a concrete list type")
	}
	return l.Len()
}
