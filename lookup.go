// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hlist

// matcher selects element types during [List] traversal.
// find passes a typed nil pointer (*H)(nil); boxing a pointer does not allocate.
type matcher interface {
	match(p Erased) bool
}

// typeMatcher matches exactly the element type V.
// Asserting *H to *V succeeds only when H and V are identical types, so an
// interface V does not match elements that merely implement it.
type typeMatcher[V any] struct{}

func (typeMatcher[V]) match(p Erased) bool {
	_, ok := p.(*V)
	return ok
}

// IndexOf returns the position of the first element whose type is V, or -1.
func IndexOf[V any](l List) int {
	pos, _ := l.find(typeMatcher[V]{}, 0)
	return pos
}

// Count returns the number of elements whose type is V.
func Count[V any](l List) int {
	_, n := l.find(typeMatcher[V]{}, 0)
	return n
}

// Contains reports whether some element has type V.
func Contains[V any](l List) bool {
	return Count[V](l) > 0
}

// lookup returns the position of the only element of type V.
func lookup[V any](op string, l List) (int, error) {
	pos, n := l.find(typeMatcher[V]{}, 0)
	if n != 1 {
		return -1, &LookupError{Op: op, Type: typeName[V](), Count: n}
	}
	return pos, nil
}

// Get returns the element whose type is V.
// V must occur exactly once in the list: a missing type yields a
// [*LookupError] wrapping [ErrNotFound], a repeated one wraps [ErrAmbiguous].
// Use positional access ([At0], [At1], ...) to read one of several elements
// of the same type.
//
// Example:
//
//	l := Of3(1, 2.0, true)
//	b, err := Get[bool](l) // true, nil
//	_, err = Get[string](l) // ErrNotFound
func Get[V any](l List) (V, error) {
	pos, err := lookup[V]("Get", l)
	if err != nil {
		var zero V
		return zero, err
	}
	e, _ := l.elem(pos)
	v, _ := e.(V)
	return v, nil
}

// MustGet is like [Get] but panics if V does not occur exactly once.
func MustGet[V any](l List) V {
	v, err := Get[V](l)
	if err != nil {
		panic(err)
	}
	return v
}

// Set returns a copy of l with the element of type V replaced by v.
// The same rules as [Get] apply to V; on error l is returned unchanged.
func Set[V any, L List](l L, v V) (L, error) {
	pos, err := lookup[V]("Set", l)
	if err != nil {
		return l, err
	}
	out, ok := l.with(pos, v)
	if !ok {
		panic("hlist: Set: element type changed during replacement")
	}
	return out.(L), nil
}

// Ref returns a pointer to the element of type V inside *l, so the element
// can be changed in place. The same rules as [Get] apply to V.
// Use [Refs0] .. [Refs12] for pointers to every element. L must be a
// concrete list type.
func Ref[V any, L List](l *L) (*V, error) {
	pos, err := lookup[V]("Ref", *l)
	if err != nil {
		return nil, err
	}
	return any(l).(referrer).refAt(pos).(*V), nil
}
