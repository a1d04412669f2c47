package exec

import (
	"context"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// VirtualShell runs command lines with the mvdan/sh POSIX interpreter, so the
// same syntax works where no sh is installed.
type VirtualShell struct{}

// Run parses and interprets cmdline. A non-zero exit surfaces as
// interp.ExitStatus.
func (s *VirtualShell) Run(ctx context.Context, cmdline string, opts RunOptions) error {
	opts = opts.withDefaults()

	prog, err := syntax.NewParser().Parse(strings.NewReader(cmdline), "")
	if err != nil {
		return fmt.Errorf("failed to parse command: %w", err)
	}

	runnerOpts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(opts.Env...)),
		interp.StdIO(opts.Stdin, opts.Stdout, opts.Stderr),
	}
	if opts.Dir != "" {
		runnerOpts = append(runnerOpts, interp.Dir(opts.Dir))
	}

	runner, err := interp.New(runnerOpts...)
	if err != nil {
		return fmt.Errorf("failed to create interpreter: %w", err)
	}

	return runner.Run(ctx, prog)
}
