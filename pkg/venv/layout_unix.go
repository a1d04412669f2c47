//go:build !windows

package venv

import (
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	binDirName = "bin"

	// envFoldCase reports whether variable names compare case-insensitively.
	envFoldCase = false
)

var interpreterNames = []string{"python", "python3"}

// sitePackagesCandidates returns site-packages directories beneath root in
// order of preference. minor is "3.11"-style and may be empty.
func sitePackagesCandidates(fsys afero.Fs, root, minor string) []string {
	var dirs []string
	if minor != "" {
		dirs = append(dirs, filepath.Join(root, "lib", "python"+minor, "site-packages"))
	}
	versions := matchDir(fsys, filepath.Join(root, "lib"), "python*")
	for i := len(versions) - 1; i >= 0; i-- {
		dirs = append(dirs, filepath.Join(versions[i], "site-packages"))
	}
	return dirs
}

func defaultSitePackages(root string) string {
	return filepath.Join(root, "lib", "site-packages")
}
