// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"code.hybscloud.com/hlist/internal/gen"
)

const (
	envPrefix      = "HLISTGEN"
	configFileName = "hlistgen"
	configFileType = "yaml"

	keyOut          = "out"
	keyPackage      = "package"
	keyTuplePackage = "tuple-package"
	keyTupleImport  = "tuple-import"
	keyMaxArity     = "max-arity"
	keyHeader       = "header"
	keyCheck        = "check"
	keyConfig       = "config"
	keyVerbose      = "verbose"
)

// options is the resolved configuration of one run.
type options struct {
	out     string
	check   bool
	verbose bool
	gen     gen.Config
}

// newViper returns a viper instance reading HLISTGEN_* variables, with the
// generator defaults registered. Flags are bound by the caller.
func newViper() *viper.Viper {
	d := gen.DefaultConfig()
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyOut, ".")
	v.SetDefault(keyPackage, d.Package)
	v.SetDefault(keyTuplePackage, d.TuplePackage)
	v.SetDefault(keyTupleImport, d.TupleImport)
	v.SetDefault(keyMaxArity, d.MaxArity)
	v.SetDefault(keyHeader, d.Header)
	return v
}

// loadOptions reads the config file, if any, and resolves every setting.
// An explicit --config file must exist; hlistgen.yaml in the output
// directory is optional.
func loadOptions(v *viper.Viper) (options, string, error) {
	if file := v.GetString(keyConfig); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(v.GetString(keyOut))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return options{}, "", errors.Wrap(err, "read config")
		}
	}

	opts := options{
		out:     v.GetString(keyOut),
		check:   v.GetBool(keyCheck),
		verbose: v.GetBool(keyVerbose),
		gen: gen.Config{
			Package:      v.GetString(keyPackage),
			TuplePackage: v.GetString(keyTuplePackage),
			TupleImport:  v.GetString(keyTupleImport),
			MaxArity:     v.GetInt(keyMaxArity),
			Header:       strings.TrimRight(v.GetString(keyHeader), "\n"),
		},
	}
	if err := opts.gen.Validate(); err != nil {
		return options{}, "", err
	}
	return opts, v.ConfigFileUsed(), nil
}
