package main

import (
	"github.com/aretw0/densca/internal/cli"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check VALUE",
	Short: "Evaluate the oracle on a single ring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, _ := cmd.Flags().GetInt("size")
		value, err := cli.ParseValue(args[0])
		if err != nil {
			return err
		}

		verdict, err := cli.RunCheck(value, size, cli.StdStreams())
		if err != nil {
			return err
		}
		if !verdict.Correct {
			return &cli.ExitError{Code: 2}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().IntP("size", "n", 0, "Ring size")
	_ = checkCmd.MarkFlagRequired("size")
}
