package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chembalance/internal/cli"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [equation...]",
	Short: "Balance equations given as arguments or one per line on stdin",
	Example: `  chembalance balance "Al + O2 -> Al2O3"
  chembalance balance --json < equations.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv(cmd)
		if err != nil {
			return err
		}
		jsonMode, _ := cmd.Flags().GetBool("json")
		textfile, _ := cmd.Flags().GetString("metrics-textfile")
		if len(args) == 0 && isTerminal(cmd.InOrStdin()) {
			fmt.Fprintln(cmd.ErrOrStderr(), "reading equations from stdin, one per line (Ctrl-D to finish)")
		}

		failed, err := cli.RunBalance(cmd.Context(), env, args, cmd.InOrStdin(), cli.BalanceOptions{
			JSON:            jsonMode,
			MetricsTextfile: textfile,
		})
		if err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%d equation(s) could not be balanced", failed)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)

	balanceCmd.Flags().Bool("json", false, "Emit one JSON object per equation")
	balanceCmd.Flags().String("metrics-textfile", "", "Write Prometheus metrics to this file after the run")
}
