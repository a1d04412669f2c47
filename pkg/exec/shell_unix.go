//go:build unix

package exec

import (
	"context"
	"os"
	"os/exec"
)

const shellPath = "/bin/sh"

func shellCommand(ctx context.Context, cmdline string) *exec.Cmd {
	// #nosec G204 -- running the user's command line is the point of this tool.
	return exec.CommandContext(ctx, shellPath, "-c", cmdline)
}

// interrupt delivers SIGINT so the child can clean up as it would on Ctrl-C.
func interrupt(p *os.Process) error {
	return p.Signal(os.Interrupt)
}
