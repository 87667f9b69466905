// cb is a terminal clipboard: cut, copy, and paste anything, with a
// versioned per-clipboard history persisted on the local filesystem.
package main

import (
	"os"

	"github.com/cloudnepal/Clipboard/cmd/cb/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		commands.PrintError(err)
		os.Exit(1)
	}
}
