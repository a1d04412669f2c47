// Package venv locates a project-local Python virtual environment and computes
// the process state needed to activate it.
package venv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"
)

// ErrNotDirectory is returned when the search root exists but is not a directory.
var ErrNotDirectory = errors.New("search root is not a directory")

// Environment identifies a located virtual environment.
type Environment struct {
	Root        string // environment root, two levels above the interpreter
	Interpreter string // interpreter binary that matched the search
}

// Search walks root for an interpreter binary whose base name equals one of
// names (InterpreterNames when empty). The environment root is the grandparent
// of the last match in walk order. A nil Environment means nothing was found;
// unreadable subtrees and a missing root count as "nothing found".
func Search(fsys afero.Fs, root string, names ...string) (*Environment, error) {
	if len(names) == 0 {
		names = interpreterNames
	}

	info, err := fsys.Stat(root)
	if err != nil {
		return nil, nil
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	var last string
	_ = afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info == nil {
			// Skip what we cannot read and keep walking.
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if slices.Contains(names, info.Name()) {
			last = path
		}
		return nil
	})

	if last == "" {
		return nil, nil
	}
	return &Environment{
		Root:        filepath.Dir(filepath.Dir(last)),
		Interpreter: last,
	}, nil
}
