package exec

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// interruptGrace is how long a cancelled child has to exit after the
// interrupt before it is killed.
var interruptGrace = 5 * time.Second

// OSShell runs command lines with the platform shell: sh -c on Unix and
// cmd /C on Windows.
type OSShell struct{}

// Run starts the shell and waits for it. The returned error carries the
// child's exit status when it ran; see ExitCode. Cancelling ctx interrupts
// the child and kills it only if it outlives interruptGrace.
func (s *OSShell) Run(ctx context.Context, cmdline string, opts RunOptions) error {
	opts = opts.withDefaults()

	cmd := shellCommand(ctx, cmdline)
	cmd.Cancel = func() error { return interrupt(cmd.Process) }
	cmd.WaitDelay = interruptGrace
	cmd.Dir = opts.Dir
	cmd.Env = opts.Env
	cmd.Stdin = opts.Stdin
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	if cmd.ProcessState != nil {
		// The child exited cleanly; err only reports the cancellation.
		return nil
	}
	return fmt.Errorf("failed to start %s: %w", cmd.Path, err)
}
