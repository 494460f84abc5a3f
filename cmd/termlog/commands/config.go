package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/termlog/internal/config"
	"github.com/thoreinstein/termlog/internal/editor"
	"github.com/thoreinstein/termlog/internal/errors"
	"github.com/thoreinstein/termlog/internal/paths"
	"github.com/thoreinstein/termlog/pkg/fileutil"
	"github.com/thoreinstein/termlog/pkg/logging"
)

// listFormat holds the value of the config list --format flag.
var listFormat string

func init() {
	configListCmd.Flags().StringVar(&listFormat, "format", "yaml", "output format: yaml, toml")
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage termlog configuration",
	Long: `Manage termlog configuration stored in ~/.config/termlog/config.yaml.

A config.toml in the same place, or a config file in the working directory,
is also picked up. Without a subcommand, lists all configuration values.`,
	Example: `  # List all configuration
  termlog config

  # Get a specific value
  termlog config get verbosity

  # Set a value
  termlog config set verbosity warning

See Also: termlog level pick`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a single configuration value by key.

Valid keys: version, verbosity, color. Environment overrides such as
TERMLOG_VERBOSITY are reflected in the value shown.`,
	Example: `  # Get the verbosity
  termlog config get verbosity

See Also: termlog config set, termlog config list`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write the config file.

Values are validated before anything is written: verbosity takes a level name
or DISABLE/NONE, color takes auto, always or never, version takes an integer
of at least 1.`,
	Example: `  # Only show warnings and errors
  termlog config set verbosity warning

  # Never colorize labels
  termlog config set color never

See Also: termlog config get, termlog config list`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Long:  `List all configuration values in YAML (default) or TOML format.`,
	Example: `  # List all configuration
  termlog config list

  # As TOML
  termlog config list --format toml

See Also: termlog config get, termlog config set`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open configuration in $EDITOR",
	Long: `Open the configuration file in your editor and validate it afterwards.

Uses $TERMLOG_EDITOR, $EDITOR or $VISUAL, falling back to nano, then vi.
If no configuration file exists yet, one holding the current values is
created first.`,
	Example: `  # Open config in default editor
  termlog config edit

  # Open with a specific editor
  EDITOR="code --wait" termlog config edit

See Also: termlog config list`,
	Args: cobra.NoArgs,
	RunE: runConfigEdit,
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if !slices.Contains(config.Keys(), key) {
		return errors.NewUserError(
			errors.Wrapf(config.ErrUnknownKey, "%q", key),
			"Valid keys: "+strings.Join(config.Keys(), ", "),
		)
	}

	if !viper.IsSet(key) {
		fmt.Fprintln(cmd.OutOrStdout(), "not set")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), viper.GetString(key))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := strings.TrimSpace(args[1])

	if err := config.ValidateValue(key, value); err != nil {
		return errors.NewUserError(err, "Valid keys: "+strings.Join(config.Keys(), ", "))
	}

	switch key {
	case config.KeyVersion:
		// Already validated as an integer
		n, _ := strconv.Atoi(value)
		viper.Set(key, n)
	default:
		viper.Set(key, value)
	}

	if err := writeConfig(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())
	path := configPath()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeConfig(); err != nil {
			return err
		}
	}

	logger.Infof("Editing %s", path)
	streams := editor.Streams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
	if err := editor.Open(cmd.Context(), path, streams); err != nil {
		return errors.NewSystemError(err, "Set $EDITOR to your preferred editor")
	}

	if _, err := config.Load(path); err != nil {
		return errors.NewUserError(err, "Run: termlog config edit")
	}
	logger.Success("Configuration is valid")
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Current()
	if err != nil {
		return err
	}

	var data []byte
	switch strings.ToLower(listFormat) {
	case "", "yaml", "yml":
		data, err = yaml.Marshal(cfg)
	case "toml":
		data, err = toml.Marshal(cfg)
	default:
		return errors.NewUserError(
			errors.Newf("unknown format %q", listFormat),
			"Use --format yaml or --format toml",
		)
	}
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

// configPath returns the file writes go to: the one that was loaded, or
// the default location when none exists yet.
func configPath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return paths.ConfigFile()
}

// writeConfig writes the current viper configuration to the config file,
// keeping its format.
func writeConfig() error {
	cfg, err := config.Current()
	if err != nil {
		return err
	}

	path := configPath()
	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return errors.NewSystemError(err, "Check permissions on "+filepath.Dir(path))
	}

	if err := fileutil.AtomicWriteConfig(path, cfg); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "writing config file"), "")
	}

	return nil
}
