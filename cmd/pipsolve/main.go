// SPDX-License-Identifier: MIT

// Command pipsolve solves parametric integer programs described in YAML.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pipsolve",
		Short: "pipsolve",
		Long:  `A CLI tool to solve parametric integer programs.`,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newSolveCmd())

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
