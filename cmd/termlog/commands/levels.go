package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/termlog/internal/errors"
	"github.com/thoreinstein/termlog/pkg/logging"
)

func init() {
	rootCmd.AddCommand(levelsCmd)
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List log levels and which are emitted",
	Long: `List every log level with its weight and whether a message at that level
would be emitted under the current verbosity. The effective threshold is
marked.`,
	Example: `  # Show the table at the configured verbosity
  termlog levels

  # Preview a different verbosity
  termlog levels -v error

See Also: termlog emit, termlog level pick`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())
	snap := logger.State().Snapshot()

	label := func(l logging.Level) string { return l.String() }
	if f, ok := logger.Formatter().(*logging.ColorFormatter); ok {
		label = f.Label
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WEIGHT\tEMITTED\tLEVEL")
	for _, l := range logging.Levels() {
		emitted := "no"
		if snap.Admits(l) {
			emitted = "yes"
		}

		// Label last so ANSI sequences don't skew column widths
		line := fmt.Sprintf("%d\t%s\t%s", l.Weight(), emitted, label(l))
		if l == snap.Threshold {
			line += "  <- threshold"
		}
		fmt.Fprintln(w, line)
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "writing level table")
	}

	switch {
	case snap.GlobalDisabled:
		fmt.Fprintln(out, "\nLogging is disabled (verbosity DISABLE/NONE).")
	case !snap.Enabled:
		fmt.Fprintln(out, "\nLogging is suppressed by an open scope.")
	}
	return nil
}
