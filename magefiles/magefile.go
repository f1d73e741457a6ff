// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package main provides build targets for hlist using Mage.
//
// Usage:
//
//	mage generate   Regenerate the per-arity sources
//	mage check      Fail if the generated sources are stale
//	mage test       Check, then run all tests
//	mage bench      Run benchmarks of the list package
//	mage lint       Run go vet and golangci-lint
package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const generator = "./cmd/hlistgen"

// Generate rewrites the generated sources.
func Generate() error {
	return sh.RunV("go", "run", generator)
}

// Check reports generated sources that differ from the generator output.
func Check() error {
	return sh.RunV("go", "run", generator, "--check")
}

// Test runs all tests once the generated sources are known to be current.
func Test() error {
	mg.Deps(Check)
	return sh.RunV("go", "test", "./...")
}

// Bench runs the benchmarks of the list package with allocation counts.
func Bench() error {
	return sh.RunV("go", "test", "-run", "^$", "-bench", ".", "-benchmem", ".")
}

// Lint runs go vet and golangci-lint.
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	return sh.RunV("golangci-lint", "run", "./...")
}
