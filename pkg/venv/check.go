package venv

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/vertti/venvrun/pkg/check"
)

// EnvironmentCheck reports what Search found beneath Root.
type EnvironmentCheck struct {
	Root string       // project root that was searched
	Env  *Environment // result of Search; nil fails the check
	FS   afero.Fs     // injected for testing
}

// Run executes the environment check.
func (c *EnvironmentCheck) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("venv: %s", c.Root),
	}

	if c.Env == nil {
		return result.Failf("no interpreter found under %s", c.Root)
	}

	meta := ReadMetadata(c.FS, c.Env.Root)

	result.AddDetailf("env: %s", c.Env.Root)
	result.AddDetailf("interpreter: %s", c.Env.Interpreter)
	if meta != nil {
		if meta.Version != "" {
			result.AddDetailf("version: %s", meta.Version)
		}
		if meta.Home != "" {
			result.AddDetailf("home: %s", meta.Home)
		}
		if filepath.Base(meta.Source) == pyvenvConfig {
			result.AddDetailf("system site-packages: %t", meta.SystemSite)
		}
	}
	result.AddDetailf("bin: %s", BinDir(c.Env.Root))
	result.AddDetailf("lib: %s", LibDir(c.FS, c.Env.Root, meta.Minor()))

	result.Status = check.StatusOK
	return result
}
