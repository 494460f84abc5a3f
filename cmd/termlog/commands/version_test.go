package commands

import (
	"runtime"
	"strings"
	"testing"

	"github.com/thoreinstein/termlog/cmd"
)

func TestVersionCommand_Output(t *testing.T) {
	setupTestEnv(t)

	output, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("version command should not return an error, got: %v", err)
	}

	tests := []struct {
		name     string
		contains string
	}{
		{"version header", "termlog version " + cmd.Version},
		{"commit field", "commit:    " + cmd.Commit},
		{"built field", "built:     " + cmd.Date},
		{"go field", "go:        " + runtime.Version()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(output, tt.contains) {
				t.Errorf("version output missing %q\nGot:\n%s", tt.contains, output)
			}
		})
	}

	if lines := strings.Split(strings.TrimSpace(output), "\n"); len(lines) != 4 {
		t.Errorf("version output has %d lines, want 4\n%s", len(lines), output)
	}
}

func TestVersionCommand_IgnoresBrokenConfig(t *testing.T) {
	dir := setupTestEnv(t)
	writeTestConfig(t, dir, "config.yaml", "color: sometimes\n")

	if _, err := executeCommand(t, "version"); err != nil {
		t.Errorf("version should run with a broken config, got: %v", err)
	}
}

func TestVersionCommand_CommandMetadata(t *testing.T) {
	if versionCmd.Use != "version" {
		t.Errorf("versionCmd.Use = %q, want %q", versionCmd.Use, "version")
	}
	if versionCmd.Short == "" {
		t.Error("versionCmd.Short should not be empty")
	}
	if versionCmd.Long == "" {
		t.Error("versionCmd.Long should not be empty")
	}
}
