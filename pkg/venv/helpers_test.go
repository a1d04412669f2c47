package venv

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// writeFiles creates each path (with parents) on fsys. Paths ending in a
// separator become directories.
func writeFiles(t *testing.T, fsys afero.Fs, files map[string]string) {
	t.Helper()
	for path, content := range files {
		if path[len(path)-1] == '/' {
			if err := fsys.MkdirAll(filepath.FromSlash(path), 0o755); err != nil {
				t.Fatalf("failed to create %s: %v", path, err)
			}
			continue
		}
		native := filepath.FromSlash(path)
		if err := fsys.MkdirAll(filepath.Dir(native), 0o755); err != nil {
			t.Fatalf("failed to create parent of %s: %v", path, err)
		}
		if err := afero.WriteFile(fsys, native, []byte(content), 0o755); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
}

// preserveActivePrefix restores the package prefix marker after the test.
func preserveActivePrefix(t *testing.T) {
	t.Helper()
	prefix, set := activePrefix, activePrefixSet
	t.Cleanup(func() { activePrefix, activePrefixSet = prefix, set })
}
