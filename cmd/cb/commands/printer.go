package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/cloudnepal/Clipboard/pkg/clipboard"
)

var (
	errorMark   = color.New(color.FgRed, color.Bold)
	successMark = color.New(color.FgGreen, color.Bold)
	detailText  = color.New(color.Faint)
)

// PrintError writes a formatted error message to stderr.
func PrintError(err error) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorMark.Sprint("✘"), errorMessage(err))
}

func printSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", successMark.Sprint("✔"), fmt.Sprintf(format, args...))
}

// errorMessage rewrites store errors into user-facing text.
func errorMessage(err error) string {
	var notFound *clipboard.EntryNotFoundError
	if errors.As(err, &notFound) {
		return fmt.Sprintf("The history entry you chose (%q) doesn't exist. Try choosing a different or newer one instead.",
			fmt.Sprint(notFound.Rank))
	}
	return err.Error()
}
