package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/thoreinstein/termlog/internal/errors"
)

// setupDoctorEnv pins the editor so results don't depend on the host.
func setupDoctorEnv(t *testing.T) string {
	t.Helper()
	dir := setupTestEnv(t)
	t.Setenv("TERMLOG_EDITOR", "")
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "non-existent-binary-12345")
	return dir
}

func TestDoctor_Default(t *testing.T) {
	dir := setupDoctorEnv(t)
	writeTestConfig(t, dir, "config.yaml", "version: 1\nverbosity: info\n")

	got, err := executeCommand(t, "--no-color", "doctor")
	if code := errors.ExitCode(err); code != errors.ExitUser {
		t.Fatalf("ExitCode() = %d, want %d (editor warning): %v", code, errors.ExitUser, err)
	}

	for _, want := range []string{
		"SUCCESS: [config] config-file: config file is valid",
		"SUCCESS: [logging] verbosity: threshold INFO (weight 20)",
		"INFO: [terminal] color: color disabled by configuration",
		"WARNING: [environment] editor:",
		"WARNING:   hint: set $EDITOR to an installed editor",
		"Summary: 2 passed, 1 info, 1 warnings, 0 errors",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\nGot:\n%s", want, got)
		}
	}
}

func TestDoctor_VerbosityFilters(t *testing.T) {
	setupDoctorEnv(t)

	got, err := executeCommand(t, "-v", "warning", "doctor")
	if errors.ExitCode(err) != errors.ExitUser {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got, "SUCCESS:") || strings.Contains(got, "INFO:") {
		t.Errorf("passes should be filtered at WARNING:\n%s", got)
	}
	if !strings.Contains(got, "WARNING: [environment] editor:") {
		t.Errorf("warning should still show:\n%s", got)
	}

	got, _ = executeCommand(t, "-v", "warning", "doctor", "--verbose")
	if !strings.Contains(got, "SUCCESS: [logging] verbosity") {
		t.Errorf("--verbose should show passes:\n%s", got)
	}
}

func TestDoctor_BrokenConfig(t *testing.T) {
	dir := setupDoctorEnv(t)
	writeTestConfig(t, dir, "config.yaml", "verbosity: loud\n")

	got, err := executeCommand(t, "doctor")
	if code := errors.ExitCode(err); code != errors.ExitSystem {
		t.Fatalf("ExitCode() = %d, want %d: %v", code, errors.ExitSystem, err)
	}
	if !strings.Contains(got, `ERROR: [config] config-file: verbosity: unknown log level "loud"`) {
		t.Errorf("expected config error line:\n%s", got)
	}
}

func TestDoctor_Quiet(t *testing.T) {
	setupDoctorEnv(t)

	got, err := executeCommand(t, "doctor", "--quiet")
	if errors.ExitCode(err) != errors.ExitUser {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("--quiet should print nothing, got %q", got)
	}
}

func TestDoctor_JSON(t *testing.T) {
	setupDoctorEnv(t)

	got, _ := executeCommand(t, "doctor", "--json")

	var report struct {
		Results []struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"results"`
		Summary struct {
			Warnings int `json:"warnings"`
		} `json:"summary"`
	}
	if err := json.Unmarshal([]byte(got), &report); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, got)
	}
	if len(report.Results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(report.Results))
	}
	if report.Results[0].Name != "config-file" || report.Results[0].Status != "info" {
		t.Errorf("first result = %+v, want config-file/info (no file)", report.Results[0])
	}
	if report.Summary.Warnings != 1 {
		t.Errorf("warnings = %d, want 1", report.Summary.Warnings)
	}
}

func TestDoctor_ExclusiveFlags(t *testing.T) {
	setupDoctorEnv(t)

	_, err := executeCommand(t, "doctor", "--json", "--quiet")
	if err == nil {
		t.Error("expected error for mutually exclusive flags")
	}
}
