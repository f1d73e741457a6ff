// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"code.hybscloud.com/hlist/internal/gen"
)

// newRootCmd returns the hlistgen command with its own viper instance and
// logger, so that tests can run it repeatedly.
func newRootCmd() *cobra.Command {
	v := newViper()
	log := logrus.New()
	cmd := &cobra.Command{
		Use:           "hlistgen",
		Short:         "Generate the per-arity sources of package hlist",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetOutput(cmd.ErrOrStderr())
			return run(v, log)
		},
	}

	f := cmd.Flags()
	f.String(keyOut, ".", "directory of package hlist")
	f.String(keyPackage, "hlist", "name of the list package")
	f.String(keyTupleImport, "code.hybscloud.com/hlist/tuple", "import path of the tuple package")
	f.Int(keyMaxArity, gen.DefaultConfig().MaxArity, "largest list length with generated operations")
	f.Bool(keyCheck, false, "report stale files instead of writing them")
	f.String(keyConfig, "", "config file (default: hlistgen.yaml in the output directory)")
	f.BoolP(keyVerbose, "v", false, "enable debug logging")
	if err := v.BindPFlags(f); err != nil {
		panic(err)
	}

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func run(v *viper.Viper, log *logrus.Logger) error {
	opts, configFile, err := loadOptions(v)
	if err != nil {
		return err
	}
	if opts.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	log.WithFields(logrus.Fields{
		"out":       opts.out,
		"package":   opts.gen.Package,
		"max_arity": opts.gen.MaxArity,
		"config":    configFile,
	}).Debug("configuration")

	files, err := gen.Generate(opts.gen)
	if err != nil {
		return err
	}

	if opts.check {
		stale, err := gen.Stale(opts.out, files)
		if err != nil {
			return err
		}
		for _, p := range stale {
			log.WithField("file", p).Warn("stale")
		}
		if len(stale) > 0 {
			return errors.Errorf("%d generated files are stale: %s", len(stale), strings.Join(stale, ", "))
		}
		log.WithField("files", len(files)).Info("up to date")
		return nil
	}

	if err := gen.Write(opts.out, files); err != nil {
		return err
	}
	for _, f := range files {
		log.WithFields(logrus.Fields{"file": f.Path, "bytes": len(f.Content)}).Info("wrote")
	}
	return nil
}
