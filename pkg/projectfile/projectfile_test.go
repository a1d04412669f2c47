package projectfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeProjectFile(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("root: .\n"), 0o600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

func mkdirs(t *testing.T, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o700); err != nil {
			t.Fatalf("failed to create directories: %v", err)
		}
	}
}

func TestFindFile_ExplicitPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeProjectFile(t, tmpDir)

	found, err := FindFile(tmpDir, path)
	if err != nil {
		t.Fatalf("FindFile failed: %v", err)
	}
	if found != path {
		t.Errorf("expected %q, got %q", path, found)
	}

	_, err = FindFile(tmpDir, filepath.Join(tmpDir, "nonexistent.yaml"))
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestFindFile_TraverseUp(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	project := filepath.Join(tmpDir, "project")
	deep := filepath.Join(project, "src", "pkg")
	mkdirs(t, deep)
	path := writeProjectFile(t, project)

	found, err := FindFile(deep, "")
	if err != nil {
		t.Fatalf("FindFile failed: %v", err)
	}
	if found != path {
		t.Errorf("expected %q, got %q", path, found)
	}
}

func TestFindFile_StopAtGit(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	outer := filepath.Join(tmpDir, "outer")
	repo := filepath.Join(outer, "repo")
	mkdirs(t, filepath.Join(repo, ".git"), filepath.Join(repo, "sub"))
	writeProjectFile(t, outer)

	_, err := FindFile(filepath.Join(repo, "sub"), "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("FindFile() error = %v, want %v", err, ErrNotFound)
	}

	inRepo := writeProjectFile(t, repo)
	found, err := FindFile(filepath.Join(repo, "sub"), "")
	if err != nil {
		t.Fatalf("FindFile failed: %v", err)
	}
	if found != inRepo {
		t.Errorf("expected %q, got %q", inRepo, found)
	}
}

func TestFindFile_StopAtHome(t *testing.T) {
	tmpDir := t.TempDir()
	home := filepath.Join(tmpDir, "home")
	project := filepath.Join(home, "project")
	mkdirs(t, project)
	t.Setenv("HOME", home)

	// Above the home directory, so never reached.
	writeProjectFile(t, tmpDir)

	_, err := FindFile(project, "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("FindFile() error = %v, want %v", err, ErrNotFound)
	}
}

func TestFindFile_IgnoresDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	mkdirs(t, filepath.Join(tmpDir, "p", FileName))

	_, err := FindFile(filepath.Join(tmpDir, "p"), "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("FindFile() error = %v, want %v", err, ErrNotFound)
	}
}
