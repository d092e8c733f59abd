package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/densca"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of densca",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "densca version %s\n", strings.TrimSpace(densca.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
