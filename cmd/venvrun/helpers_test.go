package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	resetFlags(rootCmd)
	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// isolateEnv restores the variables activation rewrites once the test ends.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PATH", "PYTHONPATH", "VIRTUAL_ENV"} {
		t.Setenv(k, os.Getenv(k))
	}
	for _, k := range []string{"VENVRUN_ROOT", "VENVRUN_SHELL", "VENVRUN_FORMAT"} {
		t.Setenv(k, "")
	}
}

func workDir(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	return wd
}
