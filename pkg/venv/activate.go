package venv

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// ActivationResult is the process state an activation produces. Nothing is
// mutated until it is handed to Apply.
type ActivationResult struct {
	Environment *Environment
	State       State
	BinDir      string
	LibDir      string
	Added       []string // import-search entries placed in front
	Metadata    *Metadata
	Activated   bool
}

// Option configures Activate.
type Option func(*options)

type options struct {
	fs         afero.Fs
	prefixHook func(*State)
}

// WithFs sets the filesystem used to inspect the environment.
func WithFs(fsys afero.Fs) Option {
	return func(o *options) { o.fs = fsys }
}

// WithPrefixHook runs fn after the prefix marker is rewritten and before it
// is verified.
func WithPrefixHook(fn func(*State)) Option {
	return func(o *options) { o.prefixHook = fn }
}

// Activate computes the state in which env is the active environment. A nil
// env returns state untouched with Activated false. Activating the same
// environment again yields the same state.
func Activate(env *Environment, state State, opts ...Option) (ActivationResult, error) {
	o := options{fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(&o)
	}

	if env == nil {
		return ActivationResult{State: state}, nil
	}

	meta := ReadMetadata(o.fs, env.Root)

	next := state.Clone()
	bins := BinDir(env.Root)
	libs := LibDir(o.fs, env.Root, meta.Minor())

	next.set(EnvVirtualEnv, env.Root)

	path := prependUnique(splitList(next.lookup(EnvPath)), []string{bins})
	next.set(EnvPath, joinList(path))

	added := siteEntries(o.fs, libs)
	next.ImportPath = prependUnique(next.ImportPath, added)
	next.set(EnvPythonPath, joinList(next.ImportPath))

	if next.Prefix != env.Root {
		next.OldPrefix = next.Prefix
		next.Prefix = env.Root
	}

	if o.prefixHook != nil {
		o.prefixHook(&next)
	}

	if next.Prefix != env.Root {
		return ActivationResult{}, &InconsistencyError{Expected: env.Root, Actual: next.Prefix}
	}

	return ActivationResult{
		Environment: env,
		State:       next,
		BinDir:      bins,
		LibDir:      libs,
		Added:       added,
		Metadata:    meta,
		Activated:   true,
	}, nil
}

// Apply writes r into the running process: every variable that differs from
// the current environment is set, and for an activation the prefix marker is
// moved and read back.
func Apply(r ActivationResult) error {
	for k, v := range r.State.Env {
		if cur, ok := os.LookupEnv(k); ok && cur == v {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return fmt.Errorf("failed to set %s: %w", k, err)
		}
	}

	if !r.Activated {
		return nil
	}

	setActivePrefix(r.State.Prefix)
	if active := ActivePrefix(); active != r.Environment.Root {
		return &InconsistencyError{Expected: r.Environment.Root, Actual: active}
	}
	return nil
}
