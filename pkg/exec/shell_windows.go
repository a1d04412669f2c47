//go:build windows

package exec

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

func comspec() string {
	if shell := os.Getenv("ComSpec"); shell != "" {
		return shell
	}
	return "cmd.exe"
}

// shellCommand passes cmdline to cmd.exe untouched. The default argv
// quoting would escape embedded quotes, which cmd does not understand.
func shellCommand(ctx context.Context, cmdline string) *exec.Cmd {
	shell := comspec()
	// #nosec G204 -- running the user's command line is the point of this tool.
	cmd := exec.CommandContext(ctx, shell)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: fmt.Sprintf(`%s /S /C "%s"`, syscall.EscapeArg(shell), cmdline),
	}
	return cmd
}

// interrupt stops the child. Windows has no SIGINT to forward.
func interrupt(p *os.Process) error {
	return p.Kill()
}
