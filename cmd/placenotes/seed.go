package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all lists with the sample lists",
	Long:  `Seed overwrites the stored lists with the sample lists, without clearing preferences.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := openEnv(cmd.Context(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.notes.LoadSample(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d sample lists\n", e.notes.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
