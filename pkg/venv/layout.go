package venv

import (
	"path/filepath"
	"slices"

	"github.com/spf13/afero"
)

// InterpreterNames returns the interpreter file names searched for on this platform.
func InterpreterNames() []string {
	return slices.Clone(interpreterNames)
}

// BinDir returns the directory holding the environment's executables.
func BinDir(root string) string {
	return filepath.Join(root, binDirName)
}

// LibDir returns the environment's site-packages directory. When the
// interpreter version is known it picks the matching lib/pythonX.Y tree,
// otherwise the last candidate in lexical order wins. A conventional path
// is returned when nothing exists on disk yet.
func LibDir(fsys afero.Fs, root, minor string) string {
	for _, dir := range sitePackagesCandidates(fsys, root, minor) {
		if isDir(fsys, dir) {
			return dir
		}
	}
	return defaultSitePackages(root)
}

// matchDir returns the entries of dir whose names match pattern, sorted by
// name. Only entry names are matched, so dir itself may contain glob
// metacharacters.
func matchDir(fsys afero.Fs, dir, pattern string) []string {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil
	}
	var matches []string
	for _, e := range entries {
		if ok, _ := filepath.Match(pattern, e.Name()); ok {
			matches = append(matches, filepath.Join(dir, e.Name()))
		}
	}
	return matches
}

func isDir(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}
