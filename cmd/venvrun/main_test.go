package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vertti/venvrun/pkg/venv"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain error", errors.New("boom"), 1},
		{"child status", &exitError{code: 3}, 3},
		{"wrapped child status", fmt.Errorf("run: %w", &exitError{code: 42}), 42},
		{"failed check", &exitError{code: 1, err: ErrCheckFailed}, 1},
		{"inconsistent activation", &venv.InconsistencyError{Expected: "/a", Actual: "/b"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	silent := &exitError{code: 3}
	if silent.Error() != "command exited with status 3" {
		t.Errorf("Error() = %q", silent.Error())
	}
	if silent.Unwrap() != nil {
		t.Errorf("Unwrap() = %v, want nil", silent.Unwrap())
	}

	failed := &exitError{code: 1, err: ErrCheckFailed}
	if !errors.Is(failed, ErrCheckFailed) {
		t.Error("exitError should unwrap to ErrCheckFailed")
	}
	if failed.Error() != ErrCheckFailed.Error() {
		t.Errorf("Error() = %q, want %q", failed.Error(), ErrCheckFailed.Error())
	}
}

func TestCommandLine(t *testing.T) {
	t.Cleanup(func() { withPython = false })

	tests := []struct {
		name   string
		args   []string
		python bool
		want   string
	}{
		{"single", []string{"ls"}, false, "ls"},
		{"joined with spaces", []string{"echo", "hi", "there"}, false, "echo hi there"},
		{"no quoting", []string{"echo", "a b"}, false, "echo a b"},
		{"empty", nil, false, ""},
		{"python prefix", []string{"-m", "pytest"}, true, "python -m pytest"},
		{"python alone", nil, true, "python"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withPython = tt.python
			if got := commandLine(tt.args); got != tt.want {
				t.Errorf("commandLine(%q) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
