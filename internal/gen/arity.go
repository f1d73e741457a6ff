// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"strconv"
	"strings"
)

// letters names type parameters: the first list of an operation takes
// letters from the front, a second list (Zip, Unzip) from offset Max.
const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// arity describes the names used by the code generated for lists of N elements.
type arity struct {
	N   int
	Max int
}

// Prev returns the arity of the tail.
func (a arity) Prev() arity { return arity{N: a.N - 1, Max: a.Max} }

// Next returns the arity after appending one element.
func (a arity) Next() arity { return arity{N: a.N + 1, Max: a.Max} }

// Types returns the element type parameters: A, B, C, ...
func (a arity) Types() []string { return letterRange(0, a.N) }

// Others returns the element type parameters of a second list.
func (a arity) Others() []string { return letterRange(a.Max, a.N) }

// Results returns the mapped element type parameters: RA, RB, RC, ...
func (a arity) Results() []string { return prefixed("R", a.Types()) }

// Vars returns value names: v0, v1, v2, ...
func (a arity) Vars() []string { return numbered("v", a.N) }

// Funcs returns function parameter names: f0, f1, f2, ...
func (a arity) Funcs() []string { return numbered("f", a.N) }

// Fields returns tuple field names: V0, V1, V2, ...
func (a arity) Fields() []string { return numbered("V", a.N) }

// Paths returns the selector expressions reaching each element of root.
func (a arity) Paths(root string) []string {
	out := make([]string, a.N)
	sel := root
	for i := range out {
		out[i] = sel + ".Head"
		sel += ".Tail"
	}
	return out
}

// Last returns the type parameter of the last element.
func (a arity) Last() string { return string(letters[a.N-1]) }

func letterRange(from, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(letters[from+i])
	}
	return out
}

func prefixed(prefix string, names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = prefix + name
	}
	return out
}

func numbered(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = prefix + strconv.Itoa(i)
	}
	return out
}

// join separates names with commas.
func join(names []string) string { return strings.Join(names, ", ") }

// typeParams renders a type parameter list body: "A, B any".
func typeParams(names ...[]string) string {
	var all []string
	for _, n := range names {
		all = append(all, n...)
	}
	return join(all) + " any"
}

// listType renders the alias naming a list of the given element types: "L2[A, B]".
func listType(types []string) string {
	if len(types) == 0 {
		return "L0"
	}
	return "L" + strconv.Itoa(len(types)) + "[" + join(types) + "]"
}

// nested renders the explicit Cons chain of types ending in tail.
func nested(types []string, tail string) string {
	var b strings.Builder
	for _, t := range types {
		b.WriteString("Cons[" + t + ", ")
	}
	b.WriteString(tail)
	b.WriteString(strings.Repeat("]", len(types)))
	return b.String()
}

// params renders a parameter list: "v0 A, v1 B".
func params(names, types []string) string {
	out := make([]string, len(names))
	for i := range names {
		out[i] = names[i] + " " + types[i]
	}
	return join(out)
}

// funcParams renders mapping function parameters: "f0 func(A) RA, f1 func(B) RB".
func funcParams(names, from, to []string) string {
	out := make([]string, len(names))
	for i := range names {
		out[i] = names[i] + " func(" + from[i] + ") " + to[i]
	}
	return join(out)
}

// pairs renders element-wise Pair types: "Pair[A, M], Pair[B, N]".
func pairs(fst, snd []string) []string {
	out := make([]string, len(fst))
	for i := range fst {
		out[i] = "Pair[" + fst[i] + ", " + snd[i] + "]"
	}
	return out
}

// fieldInits renders keyed composite literal elements: "V0: l.Head, V1: l.Tail.Head".
func fieldInits(fields, values []string) string {
	out := make([]string, len(fields))
	for i := range fields {
		out[i] = fields[i] + ": " + values[i]
	}
	return join(out)
}

// reversed returns names in reverse order.
func reversed(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[len(names)-1-i] = name
	}
	return out
}

// rest returns names without the first one.
func rest(names []string) []string { return names[1:] }

// results renders a result list: "A" or "(A, B)".
func results(types []string) string {
	if len(types) == 1 {
		return types[0]
	}
	return "(" + join(types) + ")"
}

// fieldsOf renders selectors of root: "t.V0, t.V1".
func fieldsOf(root string, fields []string) []string {
	return prefixed(root+".", fields)
}

// upTo returns names[:n].
func upTo(n int, names []string) []string { return names[:n] }

// concat returns names followed by extra.
func concat(names []string, extra ...string) []string {
	out := make([]string, 0, len(names)+len(extra))
	out = append(out, names...)
	return append(out, extra...)
}

// tails renders n ".Tail" selectors.
func tails(n int) string { return strings.Repeat(".Tail", n) }
