package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chembalance/internal/cli"
)

var checkCmd = &cobra.Command{
	Use:   "check equation",
	Short: "Check whether an equation is balanced as written",
	Long:  `Counts every element on both sides with the written coefficients applied and reports any mismatch.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv(cmd)
		if err != nil {
			return err
		}
		ok, err := cli.RunCheck(env, args[0])
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("equation is not balanced")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
