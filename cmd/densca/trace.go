package main

import (
	"github.com/aretw0/densca/internal/cli"
	"github.com/spf13/cobra"
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Print every sweep of one ring until it converges",
	Long: `Prints three lines per sweep: the cell values (X for a captured symbol), the
signal color (R or B) and the memory set (_ empty, . holds 0, , holds 1, ; holds both).
Without --value a random ring is drawn. --format mermaid emits the sweeps as a
Mermaid flowchart instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		size, _ := cmd.Flags().GetInt("size")
		seed, _ := cmd.Flags().GetUint64("seed")
		format, _ := cmd.Flags().GetString("format")

		opts := cli.TraceOptions{Size: size, Seed: seed, Format: format}
		if cmd.Flags().Changed("value") {
			raw, _ := cmd.Flags().GetString("value")
			v, err := cli.ParseValue(raw)
			if err != nil {
				return err
			}
			opts.Value, opts.HasValue = v, true
		}

		_, err := cli.RunTrace(opts, cli.StdStreams())
		return err
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)

	traceCmd.Flags().IntP("size", "n", 13, "Ring size")
	traceCmd.Flags().String("value", "", "Initial value, bit i is cell i (e.g. 0b0110)")
	traceCmd.Flags().Uint64("seed", 0, "Seed for the random ring (0 picks one)")
	traceCmd.Flags().String("format", "text", "Output format (text, mermaid)")
}
