package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/venvrun/pkg/check"
	"github.com/vertti/venvrun/pkg/cmdcheck"
	"github.com/vertti/venvrun/pkg/venv"
)

// runInfo reports the located environment and whether its interpreter runs.
func runInfo(cmd *cobra.Command, cfg *Config, env *venv.Environment) error {
	checkers := []check.Checker{
		&venv.EnvironmentCheck{Root: cfg.Root, Env: env, FS: fsys},
	}
	if env != nil {
		checkers = append(checkers, &cmdcheck.Check{
			Interpreter: env.Interpreter,
			Constraint:  cfg.RequirePython,
			Runner:      runner,
		})
	}
	return runChecks(cmd, cfg.Format, checkers...)
}
