package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/termlog/internal/config"
	"github.com/thoreinstein/termlog/internal/doctor"
	"github.com/thoreinstein/termlog/internal/errors"
	"github.com/thoreinstein/termlog/pkg/logging"
)

var (
	doctorJSON    bool
	doctorQuiet   bool
	doctorVerbose bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorQuiet, "quiet", false,
		"suppress output, exit code only")
	doctorCmd.Flags().BoolVar(&doctorVerbose, "verbose", false,
		"show every check regardless of verbosity")
	doctorCmd.MarkFlagsMutuallyExclusive("json", "quiet", "verbose")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration issues",
	Long: `Run diagnostic checks on the termlog configuration and terminal.

Checks the config file, the verbosity in effect, color support and the
editor used by "termlog config edit". Each result is logged at a level
matching its outcome (pass as SUCCESS, problems as WARNING or ERROR), so
the current verbosity filters the report.

Output modes (mutually exclusive):
  (default)   Log results through the current verbosity
  --verbose   Show all checks including passed ones
  --quiet     No output, exit code only
  --json      Machine-readable JSON output

Exit codes:
  0 - No errors or warnings
  1 - Warnings present, no errors
  2 - Errors present`,
	Example: `  # Only show problems
  termlog -v warning doctor

  # Everything, as JSON
  termlog doctor --json

See Also: termlog config edit`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())

	mode, err := logging.ParseColorMode(viper.GetString(config.KeyColor))
	if err != nil {
		mode = logging.ColorAuto
	}
	if noColor {
		mode = logging.ColorNever
	}

	runner := doctor.NewRunner(
		doctor.NewConfigFileCheck(configPath()),
		doctor.NewVerbosityCheck(verbosityToken(cmd)),
		doctor.NewColorCheck(mode, cmd.OutOrStdout()),
		doctor.NewEditorCheck(),
	)
	report := runner.Run()

	switch {
	case doctorJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return errors.Wrap(err, "encoding JSON")
		}
	case doctorQuiet:
		// Exit code only
	case doctorVerbose:
		err = logger.State().WithLevel(logging.LevelDebug, func() error {
			logReport(cmd, logger, report)
			return nil
		})
	default:
		logReport(cmd, logger, report)
	}
	if err != nil {
		return err
	}

	if report.HasErrors() {
		return errors.NewExitError(errDoctorErrors, errors.ExitSystem)
	}
	if report.HasWarnings() {
		return errors.NewExitError(errDoctorWarnings, errors.ExitUser)
	}
	return nil
}

// logReport emits each result at its severity's level, followed by the
// hint for problems. The summary line is printed unfiltered.
func logReport(cmd *cobra.Command, logger *logging.Logger, report *doctor.Report) {
	for _, r := range report.Results {
		logger.Emit(r.Status.Level(), fmt.Sprintf("[%s] %s: %s", r.Category, r.Name, r.Message))
		if r.FixHint != "" && r.Status >= doctor.SeverityWarning {
			logger.Emit(r.Status.Level(), "  hint: "+r.FixHint)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}

// verbosityToken is the raw token setupLogging resolved, for reporting.
func verbosityToken(cmd *cobra.Command) string {
	if cmd.Flags().Changed("verbosity") {
		return verbosityFlag
	}
	return viper.GetString(config.KeyVerbosity)
}

// errDoctorWarnings is a sentinel error for exit code 1.
var errDoctorWarnings = errors.New("doctor found warnings")

// errDoctorErrors is a sentinel error for exit code 2.
var errDoctorErrors = errors.New("doctor found errors")
