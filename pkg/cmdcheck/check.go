// Package cmdcheck runs an environment's interpreter to confirm it works and
// reports the version it prints.
package cmdcheck

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vertti/venvrun/pkg/check"
	"github.com/vertti/venvrun/pkg/version"
)

// DefaultTimeout bounds the version command.
const DefaultTimeout = 30 * time.Second

// Check verifies that an interpreter runs and optionally satisfies a
// version constraint.
type Check struct {
	Interpreter string        // interpreter path or name on PATH
	VersionArgs []string      // args to get version (default: --version)
	Constraint  string        // --require-python: e.g. ">=3.9"
	Timeout     time.Duration // timeout for version command (default: 30s)
	Runner      CmdRunner     // injected for testing
}

// Run executes the interpreter check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("python: %s", c.Interpreter),
	}

	path, err := c.Runner.LookPath(c.Interpreter)
	if err != nil {
		return result.Failf("not runnable: %v", err)
	}

	args := c.VersionArgs
	if len(args) == 0 {
		args = []string{"--version"}
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stdout, stderr, err := c.Runner.RunCommandContext(ctx, path, args...)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return result.Failf("version command timed out after %s", timeout)
		}
		result.AddDetailf("version command failed: %v", err)
		if stderr != "" {
			result.AddDetailf("stderr: %s", strings.TrimSpace(stderr))
		}
		result.Status = check.StatusFail
		result.Err = err
		return result
	}

	// Python 2 prints its version on stderr.
	output := strings.TrimSpace(stdout)
	if output == "" {
		output = strings.TrimSpace(stderr)
	}

	v, err := version.Extract(output)
	if err != nil {
		return result.Failf("could not parse version from output: %v", err)
	}
	result.AddDetailf("version: %s", v)

	if c.Constraint != "" {
		if err := version.Require(v, c.Constraint); err != nil {
			return result.Fail(fmt.Sprintf("version %s does not satisfy %s", v, c.Constraint), err)
		}
		result.AddDetailf("constraint: %s", c.Constraint)
	}

	result.Status = check.StatusOK
	return result
}
