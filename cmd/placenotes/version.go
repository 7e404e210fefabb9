package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/placenotes/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of placenotes",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Get(Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
