//go:build unix

package exec

import (
	"syscall"
)

// execFunc is swapped out in tests.
var execFunc = syscall.Exec

// Exec replaces the current process with sh -c cmdline.
// This is the Unix implementation using syscall.Exec.
func (e *RealExecutor) Exec(cmdline string, env []string) error {
	binary, err := lookPath(shellPath)
	if err != nil {
		return err
	}
	if env == nil {
		env = environ()
	}

	// argv[0] must be the program name by convention.
	argv := []string{"sh", "-c", cmdline}
	// #nosec G204 -- exec mode runs the command line the user passed.
	return execFunc(binary, argv, env)
}
