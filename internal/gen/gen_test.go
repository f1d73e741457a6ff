// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Validate())
	assert.Equal(t, "hlist", c.Package)
	assert.Equal(t, "tuple", c.TuplePackage)
	assert.Equal(t, 12, c.MaxArity)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"empty package", func(c *Config) { c.Package = "" }, "package name is empty"},
		{"empty tuple package", func(c *Config) { c.TuplePackage = "" }, "tuple package name is empty"},
		{"empty tuple import", func(c *Config) { c.TupleImport = "" }, "tuple import path is empty"},
		{"zero arity", func(c *Config) { c.MaxArity = 0 }, "max arity 0 out of range [1, 13]"},
		{"arity too large", func(c *Config) { c.MaxArity = 14 }, "max arity 14 out of range [1, 13]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)

			_, err = Generate(c)
			assert.Error(t, err)
		})
	}
}

func TestGenerateFiles(t *testing.T) {
	files, err := Generate(DefaultConfig())
	require.NoError(t, err)

	var paths []string
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{"literal_gen.go", "ops_gen.go", "bridge_gen.go", "tuple/tuple_gen.go"}, paths)

	for _, f := range files {
		t.Run(f.Path, func(t *testing.T) {
			src := string(f.Content)
			assert.True(t, strings.HasPrefix(src, DefaultHeader+"\n\n// Code generated by hlistgen. DO NOT EDIT.\n"), "header")

			file, err := parser.ParseFile(token.NewFileSet(), f.Path, f.Content, parser.ParseComments)
			require.NoError(t, err)
			want := "hlist"
			if strings.HasPrefix(f.Path, "tuple/") {
				want = "tuple"
			}
			assert.Equal(t, want, file.Name.Name)
		})
	}
}

func TestGenerateArityBound(t *testing.T) {
	c := DefaultConfig()
	c.MaxArity = 3
	files, err := Generate(c)
	require.NoError(t, err)
	byPath := make(map[string]string)
	for _, f := range files {
		byPath[f.Path] = string(f.Content)
	}

	literal := byPath["literal_gen.go"]
	assert.Contains(t, literal, "type L3[A, B, C any] = Cons[A, L2[B, C]]")
	assert.Contains(t, literal, "func Unpack3[A, B, C any](l L3[A, B, C]) (A, B, C) {")
	assert.NotContains(t, literal, "L4")

	ops := byPath["ops_gen.go"]
	assert.Contains(t, ops, "func Append2[A, B, V any](l L2[A, B], v V) L3[A, B, V] {")
	assert.NotContains(t, ops, "func Append3[")
	assert.Contains(t, ops, "func Zip3[A, B, C, D, E, F any](l L3[A, B, C], o L3[D, E, F]) L3[Pair[A, D], Pair[B, E], Pair[C, F]] {")
	assert.Contains(t, ops, "func At2[A, B, C any, T List](l Cons[A, Cons[B, Cons[C, T]]]) C {")
	assert.NotContains(t, ops, "func At3[")
	assert.Contains(t, ops, "func Remove2[A, B, C any, T List](l Cons[A, Cons[B, Cons[C, T]]]) (C, Cons[A, Cons[B, T]]) {")
	assert.NotContains(t, ops, "func Remove3[")
	assert.Contains(t, ops, "func Refs3[A, B, C any](l *L3[A, B, C]) L3[*A, *B, *C] {")
	assert.Contains(t, ops, "return Of3(&l.Head, &l.Tail.Head, &l.Tail.Tail.Head)")

	bridge := byPath["bridge_gen.go"]
	assert.Contains(t, bridge, `import "code.hybscloud.com/hlist/tuple"`)
	assert.Contains(t, bridge, "return tuple.T2[A, B]{V0: l.Head, V1: l.Tail.Head}")
	assert.Contains(t, bridge, "return Of3(t.V0, t.V1, t.V2)")

	tup := byPath["tuple/tuple_gen.go"]
	assert.Contains(t, tup, "func (t T1[A]) Values() A {")
	assert.Contains(t, tup, "func (T3[A, B, C]) Len() int { return 3 }")
	assert.NotContains(t, tup, "T4")
}

func TestGenerateCustomPackage(t *testing.T) {
	c := DefaultConfig()
	c.Package = "lists"
	c.TuplePackage = "tup"
	c.TupleImport = "example.com/lists/tup"
	c.MaxArity = 2
	files, err := Generate(c)
	require.NoError(t, err)
	require.Len(t, files, 4)

	assert.Equal(t, "tup/tuple_gen.go", files[3].Path)
	assert.Contains(t, string(files[0].Content), "\npackage lists\n")
	assert.Contains(t, string(files[2].Content), "func ToTuple1[A any](l L1[A]) tup.T1[A] {")
	assert.Contains(t, string(files[3].Content), "\npackage tup\n")
}

// coreSource declares the hand-written identifiers the generated list files
// depend on, with the same signatures as the list package.
const coreSource = `package hlist

type List interface{ Len() int }

type Nil struct{}

func (Nil) Len() int { return 0 }

type Cons[H any, T List] struct {
	Head H
	Tail T
}

func (c Cons[H, T]) Len() int { return 1 + c.Tail.Len() }

func Prepend[V any, L List](l L, v V) Cons[V, L] { return Cons[V, L]{Head: v, Tail: l} }

type Pair[A, B any] struct {
	Fst A
	Snd B
}

func MakePair[A, B any](a A, b B) Pair[A, B] { return Pair[A, B]{Fst: a, Snd: b} }
`

type importerFunc func(path string) (*types.Package, error)

func (f importerFunc) Import(path string) (*types.Package, error) { return f(path) }

// typeCheck checks the generated tuple package, then the generated list
// files together with coreSource.
func typeCheck(t *testing.T, c Config, files []File) {
	t.Helper()
	fset := token.NewFileSet()
	var tupleFiles, listFiles []*ast.File
	for _, f := range files {
		file, err := parser.ParseFile(fset, f.Path, f.Content, 0)
		require.NoError(t, err)
		if strings.HasPrefix(f.Path, "tuple/") {
			tupleFiles = append(tupleFiles, file)
		} else {
			listFiles = append(listFiles, file)
		}
	}
	core, err := parser.ParseFile(fset, "core.go", coreSource, 0)
	require.NoError(t, err)
	listFiles = append(listFiles, core)

	conf := types.Config{GoVersion: "go1.24"}
	tup, err := conf.Check(c.TupleImport, fset, tupleFiles, nil)
	require.NoError(t, err, "tuple package")

	conf.Importer = importerFunc(func(path string) (*types.Package, error) {
		if path == c.TupleImport {
			return tup, nil
		}
		return nil, errors.Errorf("unexpected import %q", path)
	})
	_, err = conf.Check("code.hybscloud.com/hlist", fset, listFiles, nil)
	require.NoError(t, err, "list package")
}

func TestGenerateTypeChecks(t *testing.T) {
	for _, n := range []int{1, 2, 12, MaxSupportedArity} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			c := DefaultConfig()
			c.MaxArity = n
			files, err := Generate(c)
			require.NoError(t, err)
			typeCheck(t, c, files)
		})
	}
}

func TestGenerateMaxSupportedArity(t *testing.T) {
	c := DefaultConfig()
	c.MaxArity = MaxSupportedArity
	files, err := Generate(c)
	require.NoError(t, err)
	ops := string(files[1].Content)
	assert.Contains(t, ops, "func Unzip13[")
	assert.Contains(t, ops, "func Remove12[")
	assert.Contains(t, ops, "func Refs13[")
}

func TestCommittedFilesUpToDate(t *testing.T) {
	files, err := Generate(DefaultConfig())
	require.NoError(t, err)
	stale, err := Stale("../..", files)
	require.NoError(t, err)
	assert.Empty(t, stale, "run go generate in the module root")
}

func TestArityNames(t *testing.T) {
	a := arity{N: 3, Max: 12}
	assert.Equal(t, []string{"A", "B", "C"}, a.Types())
	assert.Equal(t, []string{"M", "N", "O"}, a.Others())
	assert.Equal(t, []string{"RA", "RB", "RC"}, a.Results())
	assert.Equal(t, []string{"l.Head", "l.Tail.Head", "l.Tail.Tail.Head"}, a.Paths("l"))
	assert.Equal(t, "C", a.Last())
	assert.Equal(t, 2, a.Prev().N)
	assert.Equal(t, 4, a.Next().N)

	assert.Equal(t, "L0", listType(nil))
	assert.Equal(t, "L2[A, B]", listType([]string{"A", "B"}))
	assert.Equal(t, "Cons[A, Cons[B, T]]", nested([]string{"A", "B"}, "T"))
	assert.Equal(t, "A", results([]string{"A"}))
	assert.Equal(t, "(A, B)", results([]string{"A", "B"}))
	assert.Equal(t, "A, B, RA any", typeParams([]string{"A", "B"}, []string{"RA"}))
}
