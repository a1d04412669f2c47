// Package exec runs the user's command line once the environment is active:
// through the OS shell, through the built-in POSIX interpreter, or by
// replacing the current process.
package exec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"mvdan.cc/sh/v3/interp"
)

// Shell kinds accepted by NewShell.
const (
	ShellOS      = "os"
	ShellVirtual = "virtual"
)

// RunOptions describe the child process. Zero values inherit from the
// current process.
type RunOptions struct {
	Dir    string
	Env    []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Shell runs a command line and blocks until it finishes.
type Shell interface {
	Run(ctx context.Context, cmdline string, opts RunOptions) error
}

// Executor handles process replacement.
type Executor interface {
	// Exec replaces the current process with the shell running cmdline.
	// On Unix, this uses syscall.Exec. On Windows, returns an error.
	Exec(cmdline string, env []string) error
}

// RealExecutor is the production implementation.
type RealExecutor struct{}

// NewShell returns the shell for kind; empty means ShellOS.
func NewShell(kind string) (Shell, error) {
	switch kind {
	case "", ShellOS:
		return &OSShell{}, nil
	case ShellVirtual:
		return &VirtualShell{}, nil
	default:
		return nil, fmt.Errorf("unknown shell %q (want %q or %q)", kind, ShellOS, ShellVirtual)
	}
}

// ExitCode extracts the child's exit status from a Run error. ok is false
// when err does not carry one (the shell could not be started at all).
func ExitCode(err error) (code int, ok bool) {
	if err == nil {
		return 0, true
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	var status interp.ExitStatus
	if errors.As(err, &status) {
		return int(status), true
	}
	return 0, false
}

func (o RunOptions) withDefaults() RunOptions {
	if o.Env == nil {
		o.Env = environ()
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	return o
}

// lookPath finds the executable in PATH.
func lookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// environ returns the current environment.
func environ() []string {
	return os.Environ()
}
