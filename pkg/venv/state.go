package venv

import (
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
)

const (
	// EnvVirtualEnv names the active environment root for child processes.
	EnvVirtualEnv = "VIRTUAL_ENV"
	// EnvPath is the executable search path.
	EnvPath = "PATH"
	// EnvPythonPath holds the import-search list.
	EnvPythonPath = "PYTHONPATH"
)

// State is a snapshot of the process state that activation rewrites.
type State struct {
	Env        map[string]string // variables inherited by child processes
	ImportPath []string          // ordered import-search list
	Prefix     string            // environment considered active
	OldPrefix  string            // prefix replaced by the last activation
}

// NewState builds a State from KEY=VALUE pairs and a prefix marker.
func NewState(environ []string, prefix string) State {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	s := State{Env: env, Prefix: prefix}
	s.ImportPath = splitList(s.lookup(EnvPythonPath))
	return s
}

// CurrentState captures the running process.
func CurrentState() State {
	return NewState(os.Environ(), ActivePrefix())
}

// Clone returns a deep copy.
func (s State) Clone() State {
	c := s
	c.Env = maps.Clone(s.Env)
	if c.Env == nil {
		c.Env = make(map[string]string)
	}
	c.ImportPath = slices.Clone(s.ImportPath)
	return c
}

// Merge returns a copy with vars layered on top. A PYTHONPATH in vars
// replaces the import-search list.
func (s State) Merge(vars map[string]string) State {
	c := s.Clone()
	for k, v := range vars {
		c.set(k, v)
	}
	if v, ok := vars[EnvPythonPath]; ok {
		c.ImportPath = splitList(v)
	}
	return c
}

// Environ returns the variable table as sorted KEY=VALUE pairs.
func (s State) Environ() []string {
	out := make([]string, 0, len(s.Env))
	for _, k := range slices.Sorted(maps.Keys(s.Env)) {
		out = append(out, k+"="+s.Env[k])
	}
	return out
}

func (s State) envKey(key string) string {
	if !envFoldCase {
		return key
	}
	for k := range s.Env {
		if strings.EqualFold(k, key) {
			return k
		}
	}
	return key
}

func (s State) lookup(key string) string {
	return s.Env[s.envKey(key)]
}

func (s State) set(key, value string) {
	s.Env[s.envKey(key)] = value
}

func splitList(list string) []string {
	if list == "" {
		return nil
	}
	return filepath.SplitList(list)
}

func joinList(entries []string) string {
	return strings.Join(entries, string(os.PathListSeparator))
}

// prependUnique places entries first and drops their older occurrences from
// list. Everything else in list keeps its order, duplicates included.
func prependUnique(list, entries []string) []string {
	out := make([]string, 0, len(list)+len(entries))
	for _, e := range entries {
		if !slices.Contains(out, e) {
			out = append(out, e)
		}
	}
	for _, e := range list {
		if !slices.Contains(entries, e) {
			out = append(out, e)
		}
	}
	return out
}

var (
	activePrefix    string
	activePrefixSet bool

	lookPath = exec.LookPath
)

// ActivePrefix returns the process prefix marker. Before any activation it
// is derived from the host: VIRTUAL_ENV when set, otherwise two levels above
// the interpreter found on PATH.
func ActivePrefix() string {
	if !activePrefixSet {
		activePrefix = hostPrefix()
		activePrefixSet = true
	}
	return activePrefix
}

func setActivePrefix(prefix string) {
	activePrefix = prefix
	activePrefixSet = true
}

func hostPrefix() string {
	if v := os.Getenv(EnvVirtualEnv); v != "" {
		return v
	}
	for _, name := range interpreterNames {
		path, err := lookPath(name)
		if err != nil {
			continue
		}
		if resolved, err := filepath.EvalSymlinks(path); err == nil {
			path = resolved
		}
		return filepath.Dir(filepath.Dir(path))
	}
	return ""
}
