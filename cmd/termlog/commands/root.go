// Package commands implements the CLI commands for termlog.
package commands

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/termlog/cmd"
	"github.com/thoreinstein/termlog/internal/config"
	"github.com/thoreinstein/termlog/internal/errors"
	"github.com/thoreinstein/termlog/pkg/logging"
)

// verbosityFlag holds the value of the -v/--verbosity flag.
var verbosityFlag string

// noColor holds the value of the --no-color flag.
var noColor bool

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&verbosityFlag, "verbosity", "v", "",
		"verbosity: "+strings.Join(logging.Tokens(), ", ")+" (any case)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"disable colored level labels")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("termlog version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	_, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "termlog",
	Short: "Level-filtered terminal logging from the shell",
	Long: `termlog emits level-tagged messages through the same filter used by
the termlog Go package: a message is printed only when its level weighs at
least as much as the current verbosity threshold.

Levels, lowest to highest: DEBUG (10), INFO (20), SUCCESS (21),
WARNING (30), ERROR (40). DISABLE or NONE turns output off.

The verbosity comes from --verbosity, then TERMLOG_VERBOSITY, then the
verbosity key in ~/.config/termlog/config.yaml, and defaults to INFO.`,
	Example: `  # Print a success message
  termlog emit success "deployed"

  # Show which levels are emitted at WARNING
  termlog -v warning levels

  # Silence everything
  TERMLOG_VERBOSITY=none termlog emit error "not shown"

  See Also: termlog levels, termlog config`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := checkConfig(cmd); err != nil {
			return err
		}
		return setupLogging(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// checkConfig reports config load errors. The help, version, config and
// doctor commands run regardless so a broken file can still be inspected
// and repaired.
func checkConfig(cmd *cobra.Command) error {
	if configLoadErr == nil || skipsConfigCheck(cmd) {
		return nil
	}
	return errors.NewConfigError(configLoadErr)
}

func skipsConfigCheck(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "version", "config", "doctor":
			return true
		}
	}
	return false
}

// setupLogging builds the process-wide logger from the resolved verbosity
// and color mode, and routes log/slog through it.
func setupLogging(cmd *cobra.Command) error {
	v, err := resolveVerbosity(cmd)
	if err != nil {
		return err
	}

	mode, err := resolveColorMode(cmd)
	if err != nil {
		return err
	}

	logger := logging.New(logging.Config{
		Output: cmd.OutOrStdout(),
		Color:  mode,
	})
	v.Apply(logger.State())

	logging.SetDefault(logger)
	slog.SetDefault(slog.New(logging.NewSlogHandler(logger)))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	slog.Debug("logging configured",
		"verbosity", v.String(),
		"color", string(mode),
		"config", viper.ConfigFileUsed(),
	)
	return nil
}

// resolveVerbosity picks the verbosity token by precedence: flag, then
// TERMLOG_VERBOSITY or the config file (both via viper), then the default.
func resolveVerbosity(cmd *cobra.Command) (logging.Verbosity, error) {
	if cmd.Flags().Changed("verbosity") {
		v, err := logging.Resolve(verbosityFlag)
		if err != nil {
			return logging.Verbosity{}, errors.NewUserError(err, verbositySuggestion())
		}
		return v, nil
	}

	v, err := logging.Resolve(viper.GetString(config.KeyVerbosity))
	if err != nil {
		if skipsConfigCheck(cmd) {
			return logging.VerbosityLevel(logging.DefaultLevel), nil
		}
		return logging.Verbosity{}, errors.NewUserError(err, verbositySuggestion())
	}
	return v, nil
}

func resolveColorMode(cmd *cobra.Command) (logging.ColorMode, error) {
	if noColor {
		return logging.ColorNever, nil
	}

	mode, err := logging.ParseColorMode(viper.GetString(config.KeyColor))
	if err != nil {
		if skipsConfigCheck(cmd) {
			return logging.ColorAuto, nil
		}
		return "", errors.NewConfigError(err)
	}
	return mode, nil
}

func verbositySuggestion() string {
	return "Valid verbosity values: " + strings.Join(logging.Tokens(), ", ")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
