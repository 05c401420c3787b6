package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chembalance"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of chembalance",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "chembalance version %s\n", chembalance.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
