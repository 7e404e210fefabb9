package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/marcus/placenotes/internal/mention"
	"github.com/marcus/placenotes/internal/notes"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved lists",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	e, err := openEnv(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer e.Close()

	all := e.notes.List()
	out := cmd.OutOrStdout()
	if listJSON {
		return writeJSON(out, all)
	}
	if len(all) == 0 {
		fmt.Fprintln(out, "No lists yet")
		return nil
	}

	titleWidth := 0
	for _, n := range all {
		titleWidth = max(titleWidth, runewidth.StringWidth(displayTitle(n)))
	}
	for _, n := range all {
		lock := " "
		if n.IsPrivate {
			lock = "🔒"
		}
		fmt.Fprintf(out, "%s  %s %s  %d places  %s\n",
			n.ID,
			runewidth.FillRight(displayTitle(n), titleWidth),
			runewidth.FillRight(lock, 2),
			mention.Count(n.Content),
			n.UpdatedAt.Local().Format("2006-01-02"),
		)
	}
	return nil
}

func displayTitle(n notes.Note) string {
	if n.Emoji == "" {
		return n.Title
	}
	return n.Emoji + " " + n.Title
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
