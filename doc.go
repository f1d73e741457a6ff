// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hlist provides heterogeneous lists whose length and element types
// are part of the list type and checked by the compiler.
//
// A list is either the empty list [Nil] or a [Cons] of a head value and a
// tail list. Cons[int, Cons[string, Nil]] holds an int followed by a string;
// its length, its element types and their order are all known statically.
// Lists are plain structs: they are copied by assignment, compared with ==
// when every element type is comparable and never touch the heap.
//
// # Design
//
// The [List] interface is a sealed capability marker implemented only by
// [Nil] and [Cons]. Go cannot compute a result type by recursing on a type,
// so operations fall into two groups:
//
//   - Operations whose result type does not depend on the list's shape
//     (length, lookup, fold, iteration, formatting) recurse through sealed
//     methods and work on lists of any length. Elements cross an explicit
//     [Erased] boundary and are recovered with type assertions.
//   - Operations whose result type is computed from the list's type (append,
//     pop, extend, reverse, map, zip, positional access and removal, tuple
//     conversion)
//     are generated once per arity, up to 12 elements. They are fully
//     checked at compile time and allocate nothing.
//
// # Construction and Types
//
//   - [Nil], [Cons]: The two list shapes
//   - [New]: Explicit construction from a head and a tail
//   - [Of0] .. [Of12]: Value literals, Of3(1, "a", true)
//   - [L0] .. [L12]: Type literals, L3[int, string, bool]
//   - [Unpack1] .. [Unpack12]: Destructuring into multiple results
//   - [Cons.Split], [PopFront]: Head and tail
//   - [Len]: Length of a list type, without a value
//
// # Structural Operations
//
//   - [Prepend]: Add an element at the front, any length
//   - [Append0] .. [Append11]: Add an element at the back
//   - [Pop1] .. [Pop12]: Remove the last element
//   - [Extend0] .. [Extend12]: Concatenate with a list of any length
//   - [Reverse0] .. [Reverse12]: Reverse the element order
//   - [Map0] .. [Map12]: Apply one function per element
//   - [Zip0] .. [Zip12], [Unzip0] .. [Unzip12]: Combine two lists into a list of [Pair]
//   - [At0] .. [At11]: Positional access on any list that is long enough
//   - [Remove0] .. [Remove11]: Take out the element at a position
//   - [Refs0] .. [Refs12]: Pointers to every element, for in-place updates
//
// # Type-Indexed Lookup
//
// Lookup selects an element by its exact static type. The type must occur
// exactly once; otherwise the result is a [*LookupError] wrapping
// [ErrNotFound] or [ErrAmbiguous].
//
//   - [Get], [MustGet]: Read the element of a type
//   - [Set]: Replace the element of a type
//   - [Ref]: Pointer to the element of a type
//   - [Contains], [Count], [IndexOf]: Query element types
//
// # Traversal
//
//   - [Fold], [FoldRight]: Fold over erased elements
//   - [FoldAs], [Visit]: Fold or visit elements through a shared capability
//   - [All], [Backward]: Iterate over erased elements
//   - [Values]: Iterate over a homogeneous list
//   - [Elem]: Erased positional access
//   - [Collect]: Build a list from a sequence
//
// A capability is usually an interface such as fmt.Stringer. Every element
// is checked before the first one is visited; a failing element yields a
// [*CapabilityError].
//
// # Tuple Bridge
//
// [ToTuple0] .. [ToTuple12] and [FromTuple0] .. [FromTuple12] convert between
// lists and the tuple types of package tuple, preserving order. No conversion
// exists past 12 elements.
//
// # Code Generation
//
// The per-arity files (*_gen.go and tuple/tuple_gen.go) are produced by
// cmd/hlistgen; run go generate after changing the generator.
package hlist

//go:generate go run ./cmd/hlistgen
