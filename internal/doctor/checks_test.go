package doctor

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/thoreinstein/termlog/pkg/logging"
)

func writeFile(t *testing.T, name, content string, perm os.FileMode) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatal(err)
	}
	// WriteFile is subject to umask
	if err := os.Chmod(path, perm); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigFileCheck(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		perm     os.FileMode
		want     Severity
		contains string
	}{
		{"valid yaml", "config.yaml", "version: 1\nverbosity: debug\n", 0600, SeverityPass, "valid"},
		{"valid toml", "config.toml", "version = 1\nverbosity = 'none'\n", 0644, SeverityPass, "valid"},
		{"empty file uses defaults", "config.yaml", "", 0600, SeverityPass, "valid"},
		{"bad yaml", "config.yaml", "verbosity: [oops\n", 0600, SeverityError, "YAML error"},
		{"bad toml", "config.toml", "verbosity = \n", 0600, SeverityError, "TOML syntax error at line 1"},
		{"unknown level", "config.yaml", "verbosity: loud\n", 0600, SeverityError, "unknown log level"},
		{"bad version", "config.yaml", "version: 0\n", 0600, SeverityError, "version"},
		{"world writable", "config.yaml", "verbosity: info\n", 0666, SeverityWarning, "looser than"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if runtime.GOOS == "windows" && tt.perm != 0600 {
				t.Skip("permission bits are not meaningful on windows")
			}
			path := writeFile(t, tt.file, tt.content, tt.perm)

			got := NewConfigFileCheck(path).Run()
			if got.Status != tt.want {
				t.Errorf("Status = %v, want %v (%s)", got.Status, tt.want, got.Message)
			}
			if !strings.Contains(got.Message, tt.contains) {
				t.Errorf("Message = %q, want it to contain %q", got.Message, tt.contains)
			}
			if got.Details["path"] != path {
				t.Errorf("Details[path] = %v, want %s", got.Details["path"], path)
			}
		})
	}
}

func TestConfigFileCheck_Missing(t *testing.T) {
	got := NewConfigFileCheck(filepath.Join(t.TempDir(), "config.yaml")).Run()
	if got.Status != SeverityInfo {
		t.Errorf("Status = %v, want info", got.Status)
	}
	if got.FixHint == "" {
		t.Error("missing file should carry a hint")
	}
}

func TestVerbosityCheck(t *testing.T) {
	tests := []struct {
		token    string
		want     Severity
		contains string
	}{
		{"info", SeverityPass, "threshold INFO (weight 20)"},
		{"SUCCESS", SeverityPass, "weight 21"},
		{"none", SeverityWarning, "NONE suppresses all output"},
		{"Disable", SeverityWarning, "DISABLE suppresses"},
		{"loud", SeverityError, `unknown log level "loud"`},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got := NewVerbosityCheck(tt.token).Run()
			if got.Status != tt.want {
				t.Errorf("Status = %v, want %v", got.Status, tt.want)
			}
			if !strings.Contains(got.Message, tt.contains) {
				t.Errorf("Message = %q, want it to contain %q", got.Message, tt.contains)
			}
		})
	}
}

func TestColorCheck(t *testing.T) {
	tests := []struct {
		name     string
		mode     logging.ColorMode
		env      map[string]string
		want     Severity
		contains string
	}{
		{"always", logging.ColorAlways, nil, SeverityPass, "forced on"},
		{"never", logging.ColorNever, nil, SeverityInfo, "configuration"},
		{"NO_COLOR", logging.ColorAuto, map[string]string{"NO_COLOR": "1"}, SeverityInfo, "NO_COLOR"},
		{"dumb terminal", logging.ColorAuto, map[string]string{"TERM": "dumb"}, SeverityInfo, "TERM=dumb"},
		{"not a tty", logging.ColorAuto, map[string]string{"TERM": "xterm"}, SeverityInfo, "not a terminal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := tt.env["NO_COLOR"]; !ok {
				t.Setenv("NO_COLOR", "")
				os.Unsetenv("NO_COLOR")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got := NewColorCheck(tt.mode, &bytes.Buffer{}).Run()
			if got.Status != tt.want {
				t.Errorf("Status = %v, want %v", got.Status, tt.want)
			}
			if !strings.Contains(got.Message, tt.contains) {
				t.Errorf("Message = %q, want it to contain %q", got.Message, tt.contains)
			}
		})
	}
}

func TestEditorCheck(t *testing.T) {
	t.Setenv("TERMLOG_EDITOR", "")
	t.Setenv("VISUAL", "")

	t.Run("missing binary", func(t *testing.T) {
		t.Setenv("EDITOR", "non-existent-binary-12345 --wait")
		got := NewEditorCheck().Run()
		if got.Status != SeverityWarning {
			t.Errorf("Status = %v, want warning", got.Status)
		}
		if !strings.Contains(got.Message, "non-existent-binary-12345") {
			t.Errorf("Message = %q", got.Message)
		}
	})

	t.Run("found", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("uses a shell script editor")
		}
		script := writeFile(t, "ed.sh", "#!/bin/sh\n", 0755)
		t.Setenv("EDITOR", script)

		got := NewEditorCheck().Run()
		if got.Status != SeverityPass {
			t.Errorf("Status = %v, want pass (%s)", got.Status, got.Message)
		}
		if got.Details["path"] != script {
			t.Errorf("Details[path] = %v, want %s", got.Details["path"], script)
		}
	})
}
