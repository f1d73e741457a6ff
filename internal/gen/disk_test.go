// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFiles() []File {
	return []File{
		{Path: "a_gen.go", Content: []byte("package a\n")},
		{Path: "sub/b_gen.go", Content: []byte("package sub\n")},
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(dir, testFiles()))

	got, err := os.ReadFile(filepath.Join(dir, "sub", "b_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, "package sub\n", string(got))
}

func TestStale(t *testing.T) {
	dir := t.TempDir()

	stale, err := Stale(dir, testFiles())
	require.NoError(t, err)
	assert.Equal(t, []string{"a_gen.go", "sub/b_gen.go"}, stale, "missing files are stale")

	require.NoError(t, Write(dir, testFiles()))
	stale, err = Stale(dir, testFiles())
	require.NoError(t, err)
	assert.Empty(t, stale)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a_gen.go"), []byte("package b\n"), 0o644))
	stale, err = Stale(dir, testFiles())
	require.NoError(t, err)
	assert.Equal(t, []string{"a_gen.go"}, stale)
}

func TestWriteIntoFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "sub")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := Write(dir, testFiles())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sub/b_gen.go")
}
