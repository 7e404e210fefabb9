package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	debugFlag  bool
)

// rootCmd runs the TUI when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "placenotes",
	Short: "Lists of places, kept in your terminal",
	Long: `placenotes keeps lists of favourite places. Lists are plain text with
bullet points and @-mentions of places, stored locally.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
}
