package venv

import (
	"bufio"
	"bytes"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

// siteEntries returns the import-search entries contributed by a site
// directory: the directory itself followed by existing directories listed in
// its .pth files, in file name order.
func siteEntries(fsys afero.Fs, siteDir string) []string {
	entries := []string{siteDir}

	for _, pth := range matchDir(fsys, siteDir, "*.pth") {
		data, err := afero.ReadFile(fsys, pth)
		if err != nil {
			continue
		}
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.TrimRight(scanner.Text(), " \t\r")
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			// Executable lines are run by the interpreter, not added to the path.
			if strings.HasPrefix(line, "import ") || strings.HasPrefix(line, "import\t") {
				continue
			}
			dir := line
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(siteDir, dir)
			}
			dir = filepath.Clean(dir)
			if isDir(fsys, dir) && !slices.Contains(entries, dir) {
				entries = append(entries, dir)
			}
		}
	}
	return entries
}
