package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/densca/internal/cli"
	"github.com/aretw0/densca/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "densca",
	Short: "densca checks a sequential automaton for density classification",
	Long: `densca simulates a ring cellular automaton with a sequential local rule and
verifies, by exhaustive search, that it converges to the majority symbol.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// Commands report non-zero statuses through cli.ExitError so their deferred cleanup runs
// before the process exits.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) || exitErr.Err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(cli.ExitCode(err))
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to a YAML or JSON configuration file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
}
