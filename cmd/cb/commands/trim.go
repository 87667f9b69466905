package commands

import (
	"github.com/spf13/cobra"

	"github.com/cloudnepal/Clipboard/pkg/clipboard"
)

var trimCmd = &cobra.Command{
	Use:   "trim",
	Short: "Apply the configured retention budget to the clipboard's history",
	RunE:  runTrim,
}

func runTrim(cmd *cobra.Command, args []string) error {
	cb, cfg, err := openClipboard(0)
	if err != nil {
		return err
	}
	lock := cb.Lock()
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer lock.Release()

	cb, cfg, err = openClipboard(0)
	if err != nil {
		return err
	}
	if err := clipboard.NewManager(clipboard.ParseBudget(cfg.History)).Trim(cb); err != nil {
		return err
	}
	printSuccess("Trimmed clipboard %s to %d entries", cb.Name, cb.Index().Len())
	return nil
}
