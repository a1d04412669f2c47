//go:build windows

package venv

import (
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	binDirName = "Scripts"

	envFoldCase = true
)

var interpreterNames = []string{"python.exe"}

func sitePackagesCandidates(_ afero.Fs, root, _ string) []string {
	return []string{filepath.Join(root, "Lib", "site-packages")}
}

func defaultSitePackages(root string) string {
	return filepath.Join(root, "Lib", "site-packages")
}
