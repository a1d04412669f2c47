// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}

// MakeVenv lays out a minimal virtual environment under root and returns its
// path. The interpreter is a shell script that reports pyVersion, so it only
// runs on Unix.
func MakeVenv(t *testing.T, root, name, pyVersion string) string {
	t.Helper()

	env := filepath.Join(root, name)
	parts := strings.SplitN(pyVersion, ".", 3)
	minor := pyVersion
	if len(parts) >= 2 {
		minor = parts[0] + "." + parts[1]
	}

	dirs := []string{
		filepath.Join(env, "bin"),
		filepath.Join(env, "lib", "python"+minor, "site-packages"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", d, err)
		}
	}

	cfg := fmt.Sprintf("home = /usr/bin\ninclude-system-site-packages = false\nversion = %s\n", pyVersion)
	WriteFile(t, filepath.Join(env, "pyvenv.cfg"), cfg, 0o644)

	script := fmt.Sprintf("#!/bin/sh\necho \"Python %s\"\n", pyVersion)
	WriteFile(t, filepath.Join(env, "bin", "python"), script, 0o755)

	return env
}

// WriteFile writes content to path, failing the test on error.
func WriteFile(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
