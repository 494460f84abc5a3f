package doctor

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/termlog/internal/config"
	"github.com/thoreinstein/termlog/internal/editor"
	"github.com/thoreinstein/termlog/pkg/logging"
)

// maxSecureFilePerm is the loosest permission accepted for the config file (-rw-r--r--).
const maxSecureFilePerm os.FileMode = 0644

// ConfigFileCheck validates the config file: readable, parseable for its
// extension, values valid, permissions not looser than 0644.
type ConfigFileCheck struct {
	Path string
}

var _ Check = (*ConfigFileCheck)(nil)

// NewConfigFileCheck creates a check for the config file at path.
func NewConfigFileCheck(path string) *ConfigFileCheck {
	return &ConfigFileCheck{Path: path}
}

// Name returns the unique identifier for this check.
func (c *ConfigFileCheck) Name() string {
	return "config-file"
}

// Category returns the grouping for this check.
func (c *ConfigFileCheck) Category() string {
	return "config"
}

// Run executes the config file check.
func (c *ConfigFileCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"path": c.Path},
	}

	info, err := os.Stat(c.Path)
	if errors.Is(err, os.ErrNotExist) {
		result.Status = SeverityInfo
		result.Message = "no config file, using defaults"
		result.FixHint = "create one with: termlog config set verbosity INFO"
		return result
	}
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot stat config file: %v", err)
		return result
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot read config file: %v", err)
		result.FixHint = "check the file's owner and permissions"
		return result
	}

	cfg := config.Default()
	if err := decode(c.Path, data, cfg); err != nil {
		result.Status = SeverityError
		result.Message = err.Error()
		result.FixHint = "fix the syntax with: termlog config edit"
		return result
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		result.Status = SeverityError
		result.Message = strings.Join(msgs, "; ")
		result.FixHint = "valid verbosity values: " + strings.Join(logging.Tokens(), ", ")
		return result
	}

	if mode := info.Mode().Perm(); mode&^maxSecureFilePerm != 0 {
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("config file permissions %04o are looser than %04o", mode, maxSecureFilePerm)
		result.FixHint = fmt.Sprintf("chmod 644 %s", c.Path)
		return result
	}

	result.Status = SeverityPass
	result.Message = "config file is valid"
	return result
}

// decode parses data into cfg according to the file extension. Unknown
// extensions are read as YAML, the default format.
func decode(path string, data []byte, cfg *config.Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, cfg); err != nil {
			var decodeErr *toml.DecodeError
			if errors.As(err, &decodeErr) {
				row, col := decodeErr.Position()
				return errors.Newf("TOML syntax error at line %d, column %d: %s", row, col, decodeErr.Error())
			}
			return errors.Wrap(err, "TOML error")
		}
		return nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrap(err, "YAML error")
	}
	return nil
}

// VerbosityCheck reports the verbosity in effect and warns when it turns
// all output off.
type VerbosityCheck struct {
	Token string
}

var _ Check = (*VerbosityCheck)(nil)

// NewVerbosityCheck creates a check for a verbosity token.
func NewVerbosityCheck(token string) *VerbosityCheck {
	return &VerbosityCheck{Token: token}
}

// Name returns the unique identifier for this check.
func (c *VerbosityCheck) Name() string {
	return "verbosity"
}

// Category returns the grouping for this check.
func (c *VerbosityCheck) Category() string {
	return "logging"
}

// Run executes the verbosity check.
func (c *VerbosityCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"token": c.Token},
	}

	v, err := logging.Resolve(c.Token)
	switch {
	case err != nil:
		result.Status = SeverityError
		result.Message = err.Error()
		result.FixHint = "termlog config set verbosity INFO"
	case v.Disabled:
		result.Status = SeverityWarning
		result.Message = "verbosity " + strings.ToUpper(strings.TrimSpace(c.Token)) + " suppresses all output"
		result.FixHint = "termlog config set verbosity INFO"
	default:
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("threshold %s (weight %d)", v.Level, v.Level.Weight())
	}
	return result
}

// ColorCheck explains whether level labels will be colorized on Out.
type ColorCheck struct {
	Mode logging.ColorMode
	Out  io.Writer
}

var _ Check = (*ColorCheck)(nil)

// NewColorCheck creates a color check for output written to out.
func NewColorCheck(mode logging.ColorMode, out io.Writer) *ColorCheck {
	return &ColorCheck{Mode: mode, Out: out}
}

// Name returns the unique identifier for this check.
func (c *ColorCheck) Name() string {
	return "color"
}

// Category returns the grouping for this check.
func (c *ColorCheck) Category() string {
	return "terminal"
}

// Run executes the color check. Color being off is never a problem, only
// information.
func (c *ColorCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityInfo,
		Details:  map[string]any{"mode": string(c.Mode), "tty": logging.IsTTY(c.Out)},
	}

	_, noColor := os.LookupEnv("NO_COLOR")
	switch {
	case c.Mode == logging.ColorAlways:
		result.Status = SeverityPass
		result.Message = "color forced on"
	case c.Mode == logging.ColorNever:
		result.Message = "color disabled by configuration"
	case noColor:
		result.Message = "color disabled by NO_COLOR"
	case os.Getenv("TERM") == "dumb":
		result.Message = "color disabled by TERM=dumb"
	case !logging.IsTTY(c.Out):
		result.Message = "output is not a terminal, color off"
	default:
		result.Status = SeverityPass
		result.Message = "color enabled"
	}
	return result
}

// EditorCheck verifies the editor used by `termlog config edit` can be found.
type EditorCheck struct{}

var _ Check = (*EditorCheck)(nil)

// NewEditorCheck creates an editor check.
func NewEditorCheck() *EditorCheck {
	return &EditorCheck{}
}

// Name returns the unique identifier for this check.
func (c *EditorCheck) Name() string {
	return "editor"
}

// Category returns the grouping for this check.
func (c *EditorCheck) Category() string {
	return "environment"
}

// Run executes the editor check.
func (c *EditorCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
	}

	argv := strings.Fields(editor.Detect())
	if len(argv) == 0 {
		result.Status = SeverityWarning
		result.Message = "no editor configured"
		result.FixHint = "set $EDITOR"
		return result
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("editor %q not found in PATH", argv[0])
		result.FixHint = "set $EDITOR to an installed editor"
		return result
	}

	result.Status = SeverityPass
	result.Message = "editor " + argv[0] + " found"
	result.Details = map[string]any{"path": path}
	return result
}
