package commands

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var pasteCmd = &cobra.Command{
	Use:   "paste",
	Short: "Write the chosen entry to stdout, or its files into the current directory",
	RunE:  runPaste,
}

func runPaste(cmd *cobra.Command, args []string) error {
	cb, _, err := openClipboard(entryRank)
	if err != nil {
		return err
	}
	if cb.HoldsRawData() {
		content, err := cb.ReadRaw()
		if err != nil {
			return err
		}
		_, err = io.WriteString(os.Stdout, content)
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	children, err := os.ReadDir(cb.DataDir())
	if err != nil {
		return err
	}
	for _, child := range children {
		src := filepath.Join(cb.DataDir(), child.Name())
		if err := copyPath(src, filepath.Join(cwd, child.Name())); err != nil {
			return err
		}
	}
	printSuccess("Pasted %d item(s) from clipboard %s", len(children), cb.Name)
	return nil
}
