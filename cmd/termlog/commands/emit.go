package commands

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/termlog/internal/errors"
	"github.com/thoreinstein/termlog/pkg/logging"
)

// emitAt holds the value of the --at flag.
var emitAt string

func init() {
	emitCmd.Flags().StringVar(&emitAt, "at", "",
		"emit under a temporary threshold override (level name)")
	rootCmd.AddCommand(emitCmd)
}

var emitCmd = &cobra.Command{
	Use:   "emit <level> [message...]",
	Short: "Emit a message at a level",
	Long: `Emit a message through the level filter.

The message is printed as "LEVEL: message" when the level is admitted by the
current threshold and logging is enabled; otherwise nothing is printed and
the command still succeeds. Without a message, each line read from stdin is
emitted separately.`,
	Example: `  # Print a warning
  termlog emit warning "disk almost full"

  # Emit every line of a file at DEBUG
  termlog -v debug emit debug < build.log

  # Force a temporary threshold for this message only
  termlog emit info "shown" --at debug

See Also: termlog levels`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEmit,
}

func runEmit(cmd *cobra.Command, args []string) error {
	level, err := logging.ParseLevel(args[0])
	if err != nil {
		return errors.NewUserError(err, "Run: termlog levels")
	}

	logger := logging.FromContext(cmd.Context())

	emit := func() error {
		if len(args) > 1 {
			logger.Emit(level, strings.Join(args[1:], " "))
			return nil
		}

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			logger.Emit(level, scanner.Text())
		}
		return errors.Wrap(scanner.Err(), "reading messages from stdin")
	}

	if emitAt == "" {
		return emit()
	}

	at, err := logging.ParseLevel(emitAt)
	if err != nil {
		return errors.NewUserError(err, "--at takes a level name: DEBUG, INFO, SUCCESS, WARNING or ERROR")
	}
	return logger.State().WithLevel(at, emit)
}
