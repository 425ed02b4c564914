// internal/commands/root_test.go
package linegrep

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/linegrep/internal/appconfig"
)

// execute runs the root command with args and returns captured stdout,
// stderr, and the command error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)

	_, err := rootCmd.ExecuteC()
	return out.String(), errOut.String(), err
}

// writePoem writes the shared sample file and returns its path.
func writePoem(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "poem.txt")
	content := "Rust:\nsafe, fast, productive.\nPick three.\nTrust me"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestRootCmdMissingQuery verifies that running with no arguments reports a
// missing-argument error without touching any file.
func TestRootCmdMissingQuery(t *testing.T) {
	out, _, err := execute(t)
	if !errors.Is(err, appconfig.ErrMissingQuery) {
		t.Fatalf("expected ErrMissingQuery, got %v", err)
	}
	if out != "" {
		t.Fatalf("no output expected, got %q", out)
	}
}

// TestRootCmdMissingFilePath verifies a single argument reports the missing
// file path.
func TestRootCmdMissingFilePath(t *testing.T) {
	_, _, err := execute(t, "needle")
	if !errors.Is(err, appconfig.ErrMissingFilePath) {
		t.Fatalf("expected ErrMissingFilePath, got %v", err)
	}
}

// TestRootCmdSearch runs a full case-sensitive search through the command.
func TestRootCmdSearch(t *testing.T) {
	out, _, err := execute(t, "Rust", writePoem(t))
	if err != nil {
		t.Fatalf("root command returned error: %v", err)
	}
	if out != "Rust:\n" {
		t.Fatalf("output = %q, want %q", out, "Rust:\n")
	}
}

// TestRootCmdIgnoreCaseEnv verifies the IGNORE_CASE presence toggle,
// including an empty value.
func TestRootCmdIgnoreCaseEnv(t *testing.T) {
	t.Setenv(appconfig.EnvIgnoreCase, "")

	out, _, err := execute(t, "RuSt", writePoem(t))
	if err != nil {
		t.Fatalf("root command returned error: %v", err)
	}
	if out != "Rust:\nTrust me\n" {
		t.Fatalf("output = %q, want %q", out, "Rust:\nTrust me\n")
	}
}

// TestRootCmdIgnoreCaseFlag verifies --ignore-case matches the env toggle.
func TestRootCmdIgnoreCaseFlag(t *testing.T) {
	t.Cleanup(func() {
		_ = rootCmd.PersistentFlags().Set("ignore-case", "false")
	})

	out, _, err := execute(t, "--ignore-case", "RuSt", writePoem(t))
	if err != nil {
		t.Fatalf("root command returned error: %v", err)
	}
	if out != "Rust:\nTrust me\n" {
		t.Fatalf("output = %q, want %q", out, "Rust:\nTrust me\n")
	}
}

// TestRootCmdMissingFile verifies a nonexistent file surfaces the wrapped
// I/O error.
func TestRootCmdMissingFile(t *testing.T) {
	_, _, err := execute(t, "needle", filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

// TestShowConfigCmd verifies 'show config' prints the effective settings.
func TestShowConfigCmd(t *testing.T) {
	out, _, err := execute(t, "show", "config")
	if err != nil {
		t.Fatalf("show config returned error: %v", err)
	}
	if !strings.Contains(out, "Current configuration:") {
		t.Fatalf("expected configuration summary, got %q", out)
	}
	if !strings.Contains(out, "Ignore Case:") {
		t.Fatalf("expected ignore-case line, got %q", out)
	}
}

// TestInteractiveCmdMissingFile verifies the interactive command fails
// before opening the view when the file cannot be read.
func TestInteractiveCmdMissingFile(t *testing.T) {
	_, _, err := execute(t, "interactive", filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped os.ErrNotExist, got %v", err)
	}
}
