package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/placenotes/internal/mention"
	"github.com/marcus/placenotes/internal/notes"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print a list as plain text",
	Long:  `Print a list by its ID. Mentions are printed as place names, or the stored record with --json.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	e, err := openEnv(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer e.Close()

	n, ok := e.notes.Get(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", notes.ErrNotFound, args[0])
	}

	out := cmd.OutOrStdout()
	if showJSON {
		return writeJSON(out, n)
	}
	visibility := "public"
	if n.IsPrivate {
		visibility = "private"
	}
	fmt.Fprintf(out, "%s (%s)\n\n", displayTitle(n), visibility)
	if text := mention.PlainText(n.Content); text != "" {
		fmt.Fprintln(out, text)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
}
