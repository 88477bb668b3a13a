package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wayneeseguin/lumen/pkg/lumen"

	testhelpers "github.com/wayneeseguin/lumen/internal/testing"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--env-file", ""}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunAllScenarios(t *testing.T) {
	path := testhelpers.TempLogPath(t, "app.log")

	stdout, stderr, err := execute(t, "--file", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{
		"=== Example 1: Default Configuration ===",
		"[INFO]",
		"Application started",
		"Started with custom configuration",
		"Debug mode enabled",
		"=== Example 3: Dynamic Configuration ===",
		"please check " + path,
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q", want)
		}
	}
	if strings.Contains(stdout, "Debug info: value = 42") {
		t.Error("debug line from the default scenario should be filtered")
	}
	if strings.Contains(stdout+stderr, "will not be shown") {
		t.Error("suppressed lines were printed")
	}
	for _, want := range []string{"something went wrong", "Only error level will be shown", "Colors disabled"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q", want)
		}
	}

	lines := testhelpers.ReadLines(t, path)
	if len(lines) != 6 {
		t.Fatalf("file has %d lines, want 6: %q", len(lines), lines)
	}
	for _, line := range lines {
		if !testhelpers.LinePattern.MatchString(line) {
			t.Errorf("malformed file line %q", line)
		}
	}
}

func TestRunDefaultScenario(t *testing.T) {
	stdout, _, err := execute(t, "--scenario", "default")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(stdout, "Example 2") {
		t.Error("default scenario should not run the custom one")
	}
}

func TestUnknownScenario(t *testing.T) {
	if _, _, err := execute(t, "--scenario", "bogus"); err == nil {
		t.Error("expected an error for an unknown scenario")
	}
}

func TestResolveConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "lumen.yaml")
	if err := os.WriteFile(configPath, []byte("level: warn\noutputs: [file]\nfile: from-yaml.log\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(lumen.EnvFile, "from-env.log")

	cmd := newRootCommand()
	if err := cmd.ParseFlags([]string{"--config", configPath, "--outputs", "console", "--no-color", "--process-safe"}); err != nil {
		t.Fatal(err)
	}
	opts := &options{}
	opts.configFile, _ = cmd.Flags().GetString("config")
	opts.outputs, _ = cmd.Flags().GetString("outputs")
	opts.noColor, _ = cmd.Flags().GetBool("no-color")
	opts.processSafe, _ = cmd.Flags().GetBool("process-safe")

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		t.Fatalf("resolveConfig() error = %v", err)
	}

	want := lumen.Config{
		Level:         lumen.LevelWarn,
		Outputs:       lumen.OutputConsole,
		FilePath:      "from-env.log",
		ColorsEnabled: false,
		ThreadSafe:    true,
		ProcessSafe:   true,
	}
	if cfg != want {
		t.Errorf("resolveConfig() = %+v, want %+v", cfg, want)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("LUMEN_LEVEL=error\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(lumen.EnvLevel, "")
	os.Unsetenv(lumen.EnvLevel)

	if err := loadEnvFile(envPath); err != nil {
		t.Fatalf("loadEnvFile() error = %v", err)
	}
	if got := os.Getenv(lumen.EnvLevel); got != "error" {
		t.Errorf("%s = %q, want error", lumen.EnvLevel, got)
	}

	if err := loadEnvFile(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}
