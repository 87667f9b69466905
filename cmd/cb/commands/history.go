package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the clipboard's entries, newest first",
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	cb, _, err := openClipboard(0)
	if err != nil {
		return err
	}
	ids := cb.Index().IDs()
	for rank, id := range ids {
		path, err := cb.EntryPath(rank)
		if err != nil {
			return err
		}
		fmt.Printf("%3d  %s\n", rank, detailText.Sprintf("entry %d at %s", id, path))
	}
	return nil
}
