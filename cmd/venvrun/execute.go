package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/vertti/venvrun/pkg/check"
	"github.com/vertti/venvrun/pkg/cmdcheck"
	"github.com/vertti/venvrun/pkg/exec"
	"github.com/vertti/venvrun/pkg/output"
	"github.com/vertti/venvrun/pkg/venv"
)

// pythonCommand prefixes the command line when --python is given.
const pythonCommand = "python"

// ErrCheckFailed is returned when --require-python or --info fails.
var ErrCheckFailed = errors.New("check failed")

// Injected for testing.
var (
	fsys     afero.Fs           = afero.NewOsFs()
	executor exec.Executor      = &exec.RealExecutor{}
	runner   cmdcheck.CmdRunner = &cmdcheck.RealCmdRunner{}
)

func runExecute(cmd *cobra.Command, args []string) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := loadConfig(cmd.Flags(), workDir, configFile)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	if cfg.ConfigPath != "" {
		logger.Debug("loaded config", "path", cfg.ConfigPath)
	}

	env := locate(cfg, logger)

	if showInfo {
		return runInfo(cmd, cfg, env)
	}

	if cfg.RequirePython != "" {
		if err := requireInterpreter(cmd, cfg, env); err != nil {
			return err
		}
	}

	vars, err := readEnvFiles(cfg.EnvFiles)
	if err != nil {
		return err
	}

	result, err := venv.Activate(env, venv.CurrentState().Merge(vars), venv.WithFs(fsys))
	if err != nil {
		return err
	}
	if err := venv.Apply(result); err != nil {
		return err
	}
	if result.Activated {
		logger.Debug("activated environment",
			"env", result.Environment.Root,
			"bin", result.BinDir,
			"lib", result.LibDir,
			"added", len(result.Added))
	}

	cmdline := commandLine(args)
	output.PrintBanner(cmd.OutOrStdout(), output.Banner{
		Env: venv.ActivePrefix(),
		Cwd: workDir,
		Cmd: cmdline,
	})

	if dryRun {
		return nil
	}

	if execMode {
		return executor.Exec(cmdline, result.State.Environ())
	}

	return spawn(cmd, cfg, logger, cmdline, result.State.Environ())
}

// locate runs Search beneath the configured root. Any failure is logged and
// reported as "no environment".
func locate(cfg *Config, logger *log.Logger) *venv.Environment {
	var names []string
	if cfg.Interpreter != "" {
		names = []string{cfg.Interpreter}
	}

	env, err := venv.Search(fsys, cfg.Root, names...)
	if err != nil {
		logger.Warn("environment search failed", "root", cfg.Root, "err", err)
		return nil
	}
	if env == nil {
		logger.Debug("no environment found", "root", cfg.Root)
		return nil
	}
	logger.Debug("found environment", "env", env.Root, "interpreter", env.Interpreter)
	return env
}

func requireInterpreter(cmd *cobra.Command, cfg *Config, env *venv.Environment) error {
	if env == nil {
		output.PrintResult(cmd.ErrOrStderr(), (&venv.EnvironmentCheck{Root: cfg.Root, FS: fsys}).Run())
		return &exitError{code: 1, err: ErrCheckFailed}
	}

	c := &cmdcheck.Check{
		Interpreter: env.Interpreter,
		Constraint:  cfg.RequirePython,
		Runner:      runner,
	}
	result := c.Run()
	if !result.OK() {
		output.PrintResult(cmd.ErrOrStderr(), result)
		return &exitError{code: 1, err: ErrCheckFailed}
	}
	return nil
}

// readEnvFiles loads dotenv files in order; later files override earlier ones.
func readEnvFiles(paths []string) (map[string]string, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	vars, err := godotenv.Read(paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}
	return vars, nil
}

// commandLine joins the positional arguments with single spaces.
func commandLine(args []string) string {
	cmdline := strings.Join(args, " ")
	if withPython {
		cmdline = strings.TrimSpace(pythonCommand + " " + cmdline)
	}
	return cmdline
}

// spawn runs cmdline and waits for it. The child's exit status is dropped
// unless --propagate-exit is set.
func spawn(cmd *cobra.Command, cfg *Config, logger *log.Logger, cmdline string, environ []string) error {
	shell, err := exec.NewShell(cfg.Shell)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	err = shell.Run(ctx, cmdline, exec.RunOptions{
		Env:    environ,
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	})

	code, exited := exec.ExitCode(err)
	if !exited {
		logger.Warn("failed to run command", "cmd", cmdline, "err", err)
		return nil
	}
	logger.Debug("command finished", "status", code)

	if cfg.PropagateExit && code != 0 {
		return &exitError{code: code}
	}
	return nil
}

// runChecks runs checkers and prints them in the requested format.
func runChecks(cmd *cobra.Command, format string, checkers ...check.Checker) error {
	results, ok := check.RunAll(checkers...)
	if err := output.PrintReport(cmd.OutOrStdout(), format, results); err != nil {
		return err
	}
	if !ok {
		return &exitError{code: 1, err: ErrCheckFailed}
	}
	return nil
}
