// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chembalance/internal/cli"
	"github.com/katalvlaran/chembalance/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "chembalance",
	Short:         "chembalance balances chemical equations",
	Long:          `chembalance balances chemical equations such as "Al + O2 -> Al2O3" with exact linear algebra.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "YAML config file")
	rootCmd.PersistentFlags().String("lang", "", "Language for failure messages (en, ar)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable coloured output")
}

// newEnv loads configuration and applies persistent flag overrides.
func newEnv(cmd *cobra.Command) (*cli.Env, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if lang, _ := cmd.Flags().GetString("lang"); lang != "" {
		cfg.Lang = lang
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	noColor, _ := cmd.Flags().GetBool("no-color")

	return cli.NewEnv(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, colorEnabled(noColor, cmd.OutOrStdout()))
}
