// Package projectfile locates the .venvrun.yaml project configuration.
package projectfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the project configuration file searched for.
const FileName = ".venvrun.yaml"

// ErrNotFound is returned when no project file exists between startDir and
// the nearest repository root, home directory, or filesystem root.
var ErrNotFound = errors.New(FileName + " not found")

// FindFile returns explicitPath when set, otherwise the closest FileName in
// startDir or one of its parents. The search stops at a directory holding
// .git, at the home directory, and at the filesystem root.
func FindFile(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %w", err)
		}
		return explicitPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(currentDir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		if currentDir == homeDir {
			break
		}

		if _, err := os.Stat(filepath.Join(currentDir, ".git")); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", ErrNotFound
}
