package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vertti/venvrun/pkg/exec"
	"github.com/vertti/venvrun/pkg/output"
	"github.com/vertti/venvrun/pkg/projectfile"
)

const envPrefix = "VENVRUN"

// Config is the resolved configuration for one invocation.
type Config struct {
	Root          string   `mapstructure:"root"`
	Interpreter   string   `mapstructure:"interpreter"`
	Shell         string   `mapstructure:"shell"`
	EnvFiles      []string `mapstructure:"env_files"`
	RequirePython string   `mapstructure:"require_python"`
	PropagateExit bool     `mapstructure:"propagate_exit"`
	Format        string   `mapstructure:"format"`
	Verbose       bool     `mapstructure:"verbose"`

	// ConfigPath is the project file that was loaded, if any.
	ConfigPath string `mapstructure:"-"`
}

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"root":           "root",
	"interpreter":    "interpreter",
	"shell":          "shell",
	"env_files":      "env-file",
	"require_python": "require-python",
	"propagate_exit": "propagate-exit",
	"format":         "format",
	"verbose":        "verbose",
}

var executable = os.Executable

func projectFileName() string {
	return projectfile.FileName
}

// loadConfig merges defaults, the project file, VENVRUN_* variables and
// flags, in increasing order of precedence.
func loadConfig(flags *pflag.FlagSet, workDir, explicitPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("shell", exec.ShellOS)
	v.SetDefault("format", output.FormatText)
	v.SetDefault("env_files", []string{})

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, name := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}

	path, err := projectfile.FindFile(workDir, explicitPath)
	switch {
	case err == nil:
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	case errors.Is(err, projectfile.ErrNotFound):
		path = ""
	default:
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.ConfigPath = path

	root, err := resolveRoot(cfg.Root, rootFromFile(flags, v, path), workDir)
	if err != nil {
		return nil, err
	}
	cfg.Root = root

	switch cfg.Shell {
	case exec.ShellOS, exec.ShellVirtual:
	default:
		return nil, fmt.Errorf("invalid shell %q (want %s or %s)", cfg.Shell, exec.ShellOS, exec.ShellVirtual)
	}
	switch cfg.Format {
	case output.FormatText, output.FormatJSON, output.FormatYAML:
	default:
		return nil, fmt.Errorf("invalid format %q (want %s, %s or %s)", cfg.Format, output.FormatText, output.FormatJSON, output.FormatYAML)
	}

	return &cfg, nil
}

// rootFromFile reports the directory a relative root resolves against: the
// project file's directory when the file supplied the root, else "".
func rootFromFile(flags *pflag.FlagSet, v *viper.Viper, path string) string {
	if path == "" || flags.Changed("root") {
		return ""
	}
	if os.Getenv(envPrefix+"_ROOT") != "" {
		return ""
	}
	if !v.InConfig("root") {
		return ""
	}
	return filepath.Dir(path)
}

// resolveRoot makes root absolute. An empty root falls back to two levels
// above the running executable's directory.
func resolveRoot(root, fileDir, workDir string) (string, error) {
	if root == "" {
		return defaultRoot()
	}
	if !filepath.IsAbs(root) {
		base := workDir
		if fileDir != "" {
			base = fileDir
		}
		root = filepath.Join(base, root)
	}
	return filepath.Clean(root), nil
}

func defaultRoot() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(filepath.Dir(exe))), nil
}
