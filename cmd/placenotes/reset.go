package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all lists and restore the sample lists",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func runReset(cmd *cobra.Command, _ []string) error {
	e, err := openEnv(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer e.Close()

	out := cmd.OutOrStdout()
	if !resetYes {
		fmt.Fprintf(out, "This will delete all %d saved notes and reset the app to its initial state. Continue? [y/N] ", e.notes.Len())
		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
		default:
			fmt.Fprintln(out, "Aborted")
			return nil
		}
	}

	if err := e.notes.ClearAll(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(out, "Reset complete, %d sample lists restored\n", e.notes.Len())
	return nil
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")
}
