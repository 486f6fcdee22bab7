// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/projeto-tutor/tutor/internal/cli/config"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// SetupTestProject creates a temporary project directory holding
// configYAML as tutor.yaml (skipped when empty) and makes it the working
// directory for the rest of the test.
func SetupTestProject(t *testing.T, configYAML string) string {
	t.Helper()

	dir := t.TempDir()
	if configYAML != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileNames[0]), []byte(configYAML), 0o600))
	}
	t.Chdir(dir)
	t.Cleanup(config.ResetConfig)
	return dir
}

// Result captures one command execution.
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// Execute runs root with args and captures both output streams.
func Execute(t *testing.T, root *cobra.Command, args ...string) Result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// AssertNoANSI fails if s contains ANSI escape sequences.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("output contains ANSI escape codes: %q", s)
	}
}
