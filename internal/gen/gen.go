// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package gen renders the bounded-arity parts of the hlist module: list type
// aliases and literal constructors, per-arity typed operations, the tuple
// bridge and the tuple types themselves.
package gen

import (
	"bytes"
	"go/format"
	"path"
	"text/template"

	"github.com/pkg/errors"
)

// MaxSupportedArity is the largest arity the generator accepts.
// Zip and Unzip name the element types of two lists with distinct
// single-letter type parameters, which the alphabet bounds.
const MaxSupportedArity = len(letters) / 2

// DefaultHeader is the comment block placed at the top of every generated file.
const DefaultHeader = `// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.`

// Config controls what is generated.
type Config struct {
	// Package is the name of the list package.
	Package string

	// TuplePackage is the name of the tuple package, generated into a
	// directory of the same name below the list package.
	TuplePackage string

	// TupleImport is the import path of the tuple package.
	TupleImport string

	// MaxArity is the largest list length with generated operations.
	MaxArity int

	// Header is copied verbatim above the generated-code marker.
	Header string
}

// DefaultConfig returns the configuration of the hlist module itself.
func DefaultConfig() Config {
	return Config{
		Package:      "hlist",
		TuplePackage: "tuple",
		TupleImport:  "code.hybscloud.com/hlist/tuple",
		MaxArity:     12,
		Header:       DefaultHeader,
	}
}

// Validate reports the first invalid field of c.
func (c Config) Validate() error {
	switch {
	case c.Package == "":
		return errors.New("gen: package name is empty")
	case c.TuplePackage == "":
		return errors.New("gen: tuple package name is empty")
	case c.TupleImport == "":
		return errors.New("gen: tuple import path is empty")
	case c.MaxArity < 1 || c.MaxArity > MaxSupportedArity:
		return errors.Errorf("gen: max arity %d out of range [1, %d]", c.MaxArity, MaxSupportedArity)
	}
	return nil
}

// File is one generated source file.
type File struct {
	// Path is slash-separated and relative to the list package directory.
	Path    string
	Content []byte
}

// fileSpec binds an output path to its template.
type fileSpec struct {
	path string
	tmpl *template.Template
}

// specs lists the generated files in output order.
func (c Config) specs() []fileSpec {
	return []fileSpec{
		{path: "literal_gen.go", tmpl: literalTemplate},
		{path: "ops_gen.go", tmpl: opsTemplate},
		{path: "bridge_gen.go", tmpl: bridgeTemplate},
		{path: path.Join(c.TuplePackage, "tuple_gen.go"), tmpl: tupleTemplate},
	}
}

// templateData is the root value passed to every template.
type templateData struct {
	Config
	Arities []arity
}

// Generate renders every generated file for c.
// The output is gofmt-formatted; a template that renders invalid Go is
// reported with the file name.
func Generate(c Config) ([]File, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	data := templateData{Config: c}
	for n := 0; n <= c.MaxArity; n++ {
		data.Arities = append(data.Arities, arity{N: n, Max: c.MaxArity})
	}
	var files []File
	for _, s := range c.specs() {
		var buf bytes.Buffer
		if err := s.tmpl.Execute(&buf, data); err != nil {
			return nil, errors.Wrapf(err, "gen: render %s", s.path)
		}
		src, err := format.Source(buf.Bytes())
		if err != nil {
			return nil, errors.Wrapf(err, "gen: format %s", s.path)
		}
		files = append(files, File{Path: s.path, Content: src})
	}
	return files, nil
}
