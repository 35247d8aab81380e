package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"choir/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show choir build information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Collect()
		fmt.Fprintln(cmd.OutOrStdout(), info.String())
		if info.GitCommit != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", info.GitCommit)
		}
		if info.BuildDate != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "built:  %s\n", info.BuildDate)
		}
		return nil
	},
}
