// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command hlistgen writes the per-arity source files of package hlist:
// list type aliases and literals, typed operations, the tuple bridge and
// package tuple.
//
// Usage:
//
//	hlistgen [--out dir] [--max-arity n] [--check] [--config file] [--verbose]
//
// Flags may also be set with HLISTGEN_* environment variables or in
// hlistgen.yaml next to the generated files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
