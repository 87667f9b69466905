package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the chosen entry's content or item names",
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	cb, _, err := openClipboard(entryRank)
	if err != nil {
		return err
	}
	if cb.HoldsRawData() {
		content, err := cb.ReadRaw()
		if err != nil {
			return err
		}
		fmt.Println(content)
		return nil
	}
	if !cb.HoldsDataInCurrentEntry() {
		printSuccess("Clipboard %s entry %d is empty", cb.Name, entryRank)
		return nil
	}
	children, err := os.ReadDir(cb.DataDir())
	if err != nil {
		return err
	}
	for _, child := range children {
		fmt.Println(child.Name())
	}
	return nil
}
