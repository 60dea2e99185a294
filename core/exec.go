package core

import (
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrNotFound is returned by LookPath when no directory holds the program.
var ErrNotFound = exec.ErrNotFound

// runnable checks that name is a file somebody may execute.
func runnable(fsys afero.Fs, name string) error {
	info, err := fsys.Stat(name)
	switch {
	case err != nil:
		return err
	case info.IsDir(), info.Mode().Perm()&0111 == 0:
		return &fs.PathError{Op: "exec", Path: name, Err: fs.ErrPermission}
	default:
		return nil
	}
}

// LookPath resolves the program a command names. A name with a slash is
// used as is. Otherwise each directory of the colon separated searchPath is
// tried in order, an empty entry standing for the working directory.
func LookPath(fsys afero.Fs, searchPath, name string) (string, error) {
	if strings.ContainsRune(name, '/') {
		if err := runnable(fsys, name); err != nil {
			return "", err
		}
		return name, nil
	}

	for _, dir := range filepath.SplitList(searchPath) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, name)
		if runnable(fsys, candidate) == nil {
			return candidate, nil
		}
	}
	return "", ErrNotFound
}
