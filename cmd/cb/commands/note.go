package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note [text]",
	Short: "Show or set the clipboard's note",
	RunE:  runNote,
}

func runNote(cmd *cobra.Command, args []string) error {
	cb, _, err := openClipboard(0)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		fmt.Println(cb.Notes())
		return nil
	}
	if err := cb.SetNotes(strings.Join(args, " ")); err != nil {
		return err
	}
	printSuccess("Saved note to clipboard %s", cb.Name)
	return nil
}
