package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chembalance/internal/cli"
)

var parseCmd = &cobra.Command{
	Use:   "parse formula...",
	Short: "Print the element counts of molecular formulas",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv(cmd)
		if err != nil {
			return err
		}

		return cli.RunParse(env, args)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
