package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/venvrun/pkg/exec"
	"github.com/vertti/venvrun/pkg/output"
)

var (
	rootDir       string
	interpreter   string
	withPython    bool
	shellKind     string
	envFiles      []string
	execMode      bool
	dryRun        bool
	showInfo      bool
	reportFormat  string
	requirePython string
	propagateExit bool
	verbose       bool
	configFile    string
)

var rootCmd = &cobra.Command{
	Use:   "venvrun [flags] [--] <command> [args...]",
	Short: "Run a command inside the project's Python virtual environment",
	Long: `venvrun finds the Python virtual environment under the project root,
activates it for the current process and runs the given command through the
shell. Flags are only recognised before the first command word.`,
	Version:       Version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runExecute,
}

func init() {
	flags := rootCmd.Flags()
	flags.SetInterspersed(false)

	flags.StringVar(&rootDir, "root", "", "project root to search (default: two levels above the executable)")
	flags.StringVar(&interpreter, "interpreter", "", "interpreter binary name to search for")
	flags.BoolVar(&withPython, "python", false, "run the command line through the environment's python")
	flags.StringVar(&shellKind, "shell", exec.ShellOS, "shell used to run the command: os or virtual")
	flags.StringSliceVar(&envFiles, "env-file", nil, "dotenv file merged into the environment (repeatable)")
	flags.BoolVar(&execMode, "exec", false, "replace this process with the command (Unix only)")
	flags.BoolVar(&dryRun, "dry-run", false, "activate and print the banner without running the command")
	flags.BoolVar(&showInfo, "info", false, "report the located environment and exit")
	flags.StringVar(&reportFormat, "format", output.FormatText, "report format for --info: text, json or yaml")
	flags.StringVar(&requirePython, "require-python", "", "version constraint the interpreter must satisfy (e.g. \">=3.9\")")
	flags.BoolVar(&propagateExit, "propagate-exit", false, "exit with the command's exit status")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&configFile, "config", "", "path to "+projectFileName()+" (default: searched upward from the working directory)")
}
