package commands

import (
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the clipboard's entire history",
	RunE:  runClear,
}

func runClear(cmd *cobra.Command, args []string) error {
	cb, _, err := openClipboard(0)
	if err != nil {
		return err
	}
	lock := cb.Lock()
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer lock.Release()

	cb, _, err = openClipboard(0)
	if err != nil {
		return err
	}
	if err := cb.ClearHistory(); err != nil {
		return err
	}
	printSuccess("Cleared clipboard %s", cb.Name)
	return nil
}
