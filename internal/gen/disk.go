// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Write stores files below dir, creating subdirectories as needed.
func Write(dir string, files []File) error {
	for _, f := range files {
		name := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
			return errors.Wrapf(err, "gen: create directory for %s", f.Path)
		}
		if err := os.WriteFile(name, f.Content, 0o644); err != nil {
			return errors.Wrapf(err, "gen: write %s", f.Path)
		}
	}
	return nil
}

// Stale returns the paths of files whose content below dir differs from
// the generated content, including files that do not exist yet.
func Stale(dir string, files []File) ([]string, error) {
	var stale []string
	for _, f := range files {
		got, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(f.Path)))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			stale = append(stale, f.Path)
		case err != nil:
			return nil, errors.Wrapf(err, "gen: read %s", f.Path)
		case !bytes.Equal(got, f.Content):
			stale = append(stale, f.Path)
		}
	}
	return stale, nil
}
