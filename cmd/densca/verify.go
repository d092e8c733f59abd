package main

import (
	"context"
	"fmt"

	"github.com/aretw0/densca"
	"github.com/aretw0/densca/internal/cli"
	"github.com/aretw0/densca/internal/config"
	"github.com/aretw0/densca/internal/presentation/tui"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Search every ring of the configured sizes for a counterexample",
	Long: `Runs the automaton on every initial configuration of each ring size and reports
"size N clean", or prints the sweep-by-sweep trace of a configuration that ends on the
wrong symbol. Sizes are searched one after another, each one in parallel.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		debug, _ := cmd.Flags().GetBool("debug")
		quiet, _ := cmd.Flags().GetBool("quiet")
		asJSON, _ := cmd.Flags().GetBool("json")

		streams := cli.StdStreams()
		if !quiet {
			tui.PrintBanner(streams.Err, termenv.NewOutput(streams.Err).Profile, densca.Version)
		}

		sc := cli.NewSignalContext(context.Background())
		defer sc.Cancel()

		clean, err := cli.RunVerify(sc, cli.VerifyOptions{Config: cfg, Debug: debug, JSON: asJSON}, streams)
		if err := cli.HandleExecutionError(err); err != nil {
			return err
		}
		if sig := sc.Signal(); sig != nil {
			fmt.Fprintf(streams.Err, "\nInterrupted (%v)\n", sig)
			return &cli.ExitError{Code: 130}
		}
		if !clean {
			return &cli.ExitError{Code: 2}
		}
		return nil
	},
}

// loadConfig reads the configuration file and applies flag overrides on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("min") {
		cfg.MinSize, _ = flags.GetInt("min")
	}
	if flags.Changed("max") {
		cfg.MaxSize, _ = flags.GetInt("max")
	}
	if flags.Changed("size") {
		size, _ := flags.GetInt("size")
		cfg.MinSize, cfg.MaxSize = size, size
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("chunk") {
		cfg.ChunkSize, _ = flags.GetInt("chunk")
	}
	if flags.Changed("full-range") {
		cfg.FullRange, _ = flags.GetBool("full-range")
	}
	if noProgress, _ := flags.GetBool("no-progress"); noProgress {
		cfg.Progress = false
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	return cfg, cfg.Validate()
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().Int("min", 2, "Smallest ring size to search")
	verifyCmd.Flags().Int("max", 30, "Largest ring size to search")
	verifyCmd.Flags().Int("size", 0, "Search a single ring size")
	verifyCmd.Flags().IntP("workers", "j", 0, "Number of workers (0 uses every CPU)")
	verifyCmd.Flags().Int("chunk", 4096, "Candidates handed to a worker at once")
	verifyCmd.Flags().Bool("full-range", false, "Also enumerate values with the top bit set")
	verifyCmd.Flags().Bool("no-progress", false, "Disable the progress line")
	verifyCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :2112)")
	verifyCmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")
	verifyCmd.Flags().BoolP("quiet", "q", false, "Do not print the banner")
	verifyCmd.Flags().Bool("json", false, "Report each size as a JSON line")

	// Make 'verify' the default if no command is provided
	rootCmd.RunE = verifyCmd.RunE
	rootCmd.Flags().AddFlagSet(verifyCmd.Flags())
}
