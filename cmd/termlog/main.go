// Package main is the entry point for the termlog CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/termlog/cmd/termlog/commands"
	"github.com/thoreinstein/termlog/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, exitErr.Suggestion)
		}
		os.Exit(errors.ExitCode(err))
	}
}
