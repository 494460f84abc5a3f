package commands

import (
	"fmt"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/termlog/internal/config"
	"github.com/thoreinstein/termlog/internal/errors"
	"github.com/thoreinstein/termlog/pkg/logging"
)

func init() {
	levelCmd.AddCommand(levelPickCmd)
	rootCmd.AddCommand(levelCmd)
}

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Show or choose the persisted verbosity",
	Long: `Show the verbosity in effect for this invocation, or pick a new default
interactively with "termlog level pick".`,
	Example: `  # Show the current verbosity
  termlog level

  # Choose a new default
  termlog level pick

See Also: termlog levels, termlog config set`,
	Args: cobra.NoArgs,
	RunE: runLevelShow,
}

var levelPickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactively pick the default verbosity",
	Long: `Open a fuzzy finder over the verbosity tokens and store the choice as the
verbosity key in the config file. Press Esc or Ctrl-C to leave unchanged.`,
	Example: `  # Pick and persist a verbosity
  termlog level pick

See Also: termlog config get verbosity`,
	Args: cobra.NoArgs,
	RunE: runLevelPick,
}

// findToken is the interactive chooser. Tests replace it.
var findToken = func(tokens []string) (int, error) {
	return fuzzyfinder.Find(
		tokens,
		func(i int) string { return tokens[i] },
		fuzzyfinder.WithPromptString("verbosity> "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return describeToken(tokens[i])
		}),
	)
}

func runLevelShow(cmd *cobra.Command, _ []string) error {
	snap := logging.FromContext(cmd.Context()).State().Snapshot()
	out := cmd.OutOrStdout()
	if snap.GlobalDisabled {
		fmt.Fprintln(out, logging.TokenDisable)
		return nil
	}
	fmt.Fprintln(out, snap.Threshold)
	return nil
}

func runLevelPick(cmd *cobra.Command, _ []string) error {
	tokens := logging.Tokens()

	idx, err := findToken(tokens)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive level pick failed")
	}

	token := tokens[idx]
	viper.Set(config.KeyVerbosity, token)
	if err := writeConfig(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", config.KeyVerbosity, token)
	return nil
}

// describeToken renders the preview for one verbosity token: which levels
// it lets through.
func describeToken(token string) string {
	v, err := logging.Resolve(token)
	if err != nil {
		return err.Error()
	}
	if v.Disabled {
		return token + "\n\nAll output is suppressed."
	}

	var shown []string
	for _, l := range logging.Levels() {
		if v.Level.Admits(l) {
			shown = append(shown, l.String())
		}
	}
	return fmt.Sprintf("%s (weight %d)\n\nEmits: %s", v.Level, v.Level.Weight(), strings.Join(shown, ", "))
}
