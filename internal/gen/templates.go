// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import "text/template"

var funcs = template.FuncMap{
	"join":       join,
	"typeParams": typeParams,
	"listType":   listType,
	"nested":     nested,
	"params":     params,
	"funcParams": funcParams,
	"pairs":      pairs,
	"fieldInits": fieldInits,
	"reversed":   reversed,
	"rest":       rest,
	"upTo":       upTo,
	"concat":     concat,
	"results":    results,
	"tails":      tails,
	"fieldsOf":   fieldsOf,
	"prefixed":   prefixed,
}

// preamble opens every generated file.
const preamble = `{{define "preamble"}}{{.Header}}

// Code generated by hlistgen. DO NOT EDIT.
{{end}}`

func parse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Parse(preamble + text))
}

var literalTemplate = parse("literal", `{{template "preamble" .}}
package {{.Package}}
{{range .Arities}}
// L{{.N}} is the list type {{nested .Types "Nil"}}.
{{if eq .N 0}}type L0 = Nil{{else}}type L{{.N}}[{{typeParams .Types}}] = Cons[{{index .Types 0}}, {{listType (rest .Types)}}]{{end}}
{{end}}{{range .Arities}}{{if eq .N 0}}
// Of0 returns the empty list.
func Of0() L0 {
	return Nil{}
}
{{else}}
// Of{{.N}} returns the list of its arguments, in order.
func Of{{.N}}[{{typeParams .Types}}]({{params .Vars .Types}}) {{listType .Types}} {
	return Prepend(Of{{.Prev.N}}({{join (rest .Vars)}}), v0)
}
{{end}}{{end}}{{range .Arities}}{{if gt .N 0}}
// Unpack{{.N}} returns the elements of l, in order.
func Unpack{{.N}}[{{typeParams .Types}}](l {{listType .Types}}) {{results .Types}} {
	return {{join (.Paths "l")}}
}
{{end}}{{end}}`)

var opsTemplate = parse("ops", `{{template "preamble" .}}
package {{.Package}}
{{range .Arities}}{{if lt .N $.MaxArity}}
// Append{{.N}} returns l with v added after its last element.
func Append{{.N}}[{{typeParams (concat .Types "V")}}](l {{listType .Types}}, v V) {{listType (concat .Types "V")}} {
{{- if eq .N 0}}
	return Of1(v)
{{- else}}
	return Prepend(Append{{.Prev.N}}(l.Tail, v), l.Head)
{{- end}}
}
{{end}}{{end}}{{range .Arities}}{{if gt .N 0}}
// Pop{{.N}} returns the last element of l and the list of the elements before it.
func Pop{{.N}}[{{typeParams .Types}}](l {{listType .Types}}) ({{.Last}}, {{listType (upTo .Prev.N .Types)}}) {
{{- if eq .N 1}}
	return l.Head, l.Tail
{{- else}}
	last, rest := Pop{{.Prev.N}}(l.Tail)
	return last, Prepend(rest, l.Head)
{{- end}}
}
{{end}}{{end}}{{range .Arities}}{{if eq .N 0}}
// Extend0 returns the elements of l followed by the list t.
func Extend0[T List](l L0, t T) T {
	return t
}
{{else}}
// Extend{{.N}} returns the elements of l followed by the list t.
func Extend{{.N}}[{{join .Types}} any, T List](l {{listType .Types}}, t T) {{nested .Types "T"}} {
	return Prepend(Extend{{.Prev.N}}(l.Tail, t), l.Head)
}
{{end}}{{end}}{{range .Arities}}{{if eq .N 0}}
// Reverse0 returns the elements of l in reverse order.
func Reverse0(l L0) L0 {
	return l
}
{{else}}
// Reverse{{.N}} returns the elements of l in reverse order.
func Reverse{{.N}}[{{typeParams .Types}}](l {{listType .Types}}) {{listType (reversed .Types)}} {
	{{join .Vars}} := Unpack{{.N}}(l)
	return Of{{.N}}({{join (reversed .Vars)}})
}
{{end}}{{end}}{{range .Arities}}{{if eq .N 0}}
// Map0 applies the i-th function to the i-th element of l.
func Map0(l L0) L0 {
	return l
}
{{else}}
// Map{{.N}} applies the i-th function to the i-th element of l.
func Map{{.N}}[{{typeParams .Types .Results}}](l {{listType .Types}}, {{funcParams .Funcs .Types .Results}}) {{listType .Results}} {
	head := f0(l.Head)
	return Prepend(Map{{.Prev.N}}(l.Tail{{range rest .Funcs}}, {{.}}{{end}}), head)
}
{{end}}{{end}}{{range .Arities}}{{if eq .N 0}}
// Zip0 pairs the elements of l and o position by position.
func Zip0(l, o L0) L0 {
	return l
}
{{else}}
// Zip{{.N}} pairs the elements of l and o position by position.
func Zip{{.N}}[{{typeParams .Types .Others}}](l {{listType .Types}}, o {{listType .Others}}) {{listType (pairs .Types .Others)}} {
	return Prepend(Zip{{.Prev.N}}(l.Tail, o.Tail), MakePair(l.Head, o.Head))
}
{{end}}{{end}}{{range .Arities}}{{if eq .N 0}}
// Unzip0 splits a list of pairs into the list of first and the list of second components.
func Unzip0(l L0) (L0, L0) {
	return l, l
}
{{else}}
// Unzip{{.N}} splits a list of pairs into the list of first and the list of second components.
func Unzip{{.N}}[{{typeParams .Types .Others}}](l {{listType (pairs .Types .Others)}}) ({{listType .Types}}, {{listType .Others}}) {
	fst, snd := Unzip{{.Prev.N}}(l.Tail)
	return Prepend(fst, l.Head.Fst), Prepend(snd, l.Head.Snd)
}
{{end}}{{end}}{{range .Arities}}{{if lt .N $.MaxArity}}
// At{{.N}} returns the element at position {{.N}} of any list with {{.Next.N}} or more elements.
func At{{.N}}[{{join .Next.Types}} any, T List](l {{nested .Next.Types "T"}}) {{index .Next.Types .N}} {
	return l{{tails .N}}.Head
}
{{end}}{{end}}{{range .Arities}}{{if lt .N $.MaxArity}}
// Remove{{.N}} takes the element at position {{.N}} out of any list with {{.Next.N}} or more
// elements. It returns the element and the list of the other elements, in order.
func Remove{{.N}}[{{join .Next.Types}} any, T List](l {{nested .Next.Types "T"}}) ({{index .Next.Types .N}}, {{nested .Types "T"}}) {
{{- if eq .N 0}}
	return l.Head, l.Tail
{{- else}}
	v, rest := Remove{{.Prev.N}}(l.Tail)
	return v, Prepend(rest, l.Head)
{{- end}}
}
{{end}}{{end}}{{range .Arities}}{{if eq .N 0}}
// Refs0 returns the list of pointers to the elements of *l.
func Refs0(l *L0) L0 {
	return Nil{}
}
{{else}}
// Refs{{.N}} returns the list of pointers to the elements of *l, in order.
func Refs{{.N}}[{{typeParams .Types}}](l *{{listType .Types}}) {{listType (prefixed "*" .Types)}} {
	return Of{{.N}}({{join (prefixed "&" (.Paths "l"))}})
}
{{end}}{{end}}`)

var bridgeTemplate = parse("bridge", `{{template "preamble" .}}
package {{.Package}}

import "{{.TupleImport}}"
{{range .Arities}}{{if eq .N 0}}
// ToTuple0 converts l to the tuple of its elements, in order.
func ToTuple0(l L0) {{$.TuplePackage}}.T0 {
	return {{$.TuplePackage}}.T0{}
}

// FromTuple0 converts t to the list of its components, in order.
func FromTuple0(t {{$.TuplePackage}}.T0) L0 {
	return Nil{}
}
{{else}}
// ToTuple{{.N}} converts l to the tuple of its elements, in order.
func ToTuple{{.N}}[{{typeParams .Types}}](l {{listType .Types}}) {{$.TuplePackage}}.T{{.N}}[{{join .Types}}] {
	return {{$.TuplePackage}}.T{{.N}}[{{join .Types}}]{ {{- fieldInits .Fields (.Paths "l") -}} }
}

// FromTuple{{.N}} converts t to the list of its components, in order.
func FromTuple{{.N}}[{{typeParams .Types}}](t {{$.TuplePackage}}.T{{.N}}[{{join .Types}}]) {{listType .Types}} {
	return Of{{.N}}({{join (fieldsOf "t" .Fields)}})
}
{{end}}{{end}}`)

var tupleTemplate = parse("tuple", `{{template "preamble" .}}
package {{.TuplePackage}}
{{range .Arities}}{{if eq .N 0}}
// T0 is the empty tuple.
type T0 struct{}

// New0 returns the empty tuple.
func New0() T0 {
	return T0{}
}

// Len returns 0.
func (T0) Len() int { return 0 }
{{else}}{{$a := .}}
// T{{.N}} is a tuple of {{.N}} {{if eq .N 1}}component{{else}}components{{end}}.
type T{{.N}}[{{typeParams .Types}}] struct {
{{- range $i, $f := .Fields}}
	{{$f}} {{index $a.Types $i}}
{{- end}}
}

// New{{.N}} returns the tuple of its arguments, in order.
func New{{.N}}[{{typeParams .Types}}]({{params .Vars .Types}}) T{{.N}}[{{join .Types}}] {
	return T{{.N}}[{{join .Types}}]{ {{- fieldInits .Fields .Vars -}} }
}

// Len returns {{.N}}.
func (T{{.N}}[{{join .Types}}]) Len() int { return {{.N}} }

// Values returns the components of t, in order.
func (t T{{.N}}[{{join .Types}}]) Values() {{results .Types}} {
	return {{join (fieldsOf "t" .Fields)}}
}
{{end}}{{end}}`)
