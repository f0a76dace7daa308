package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// seedDB drops an empty database file where the default config looks
// for it, so the bare-command run takes the dashboard path.
func seedDB(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.MkdirAll(filepath.Join(dir, ".orbit"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".orbit", "orbit.db"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRootDefault_LaunchesDashboardWithContext(t *testing.T) {
	seedDB(t)

	orig := launchDashboard
	t.Cleanup(func() { launchDashboard = orig })

	var got context.Context
	launchDashboard = func(cmd *cobra.Command) error {
		got = cmd.Context()
		return nil
	}

	rootCmd.SetArgs([]string{})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("bare run with existing db: %v", err)
	}
	if got == nil {
		t.Fatal("dashboard launched with a nil context")
	}
}

func TestRootDefault_NoDatabaseShowsHelp(t *testing.T) {
	t.Chdir(t.TempDir())

	orig := launchDashboard
	t.Cleanup(func() { launchDashboard = orig })

	launched := false
	launchDashboard = func(*cobra.Command) error {
		launched = true
		return nil
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	rootCmd.SetArgs([]string{})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("bare run without db: %v", err)
	}
	if launched {
		t.Error("fresh directory must fall back to help, not the dashboard")
	}
	if !bytes.Contains(out.Bytes(), []byte("Usage:")) {
		t.Errorf("expected help output, got %q", out.String())
	}
}
