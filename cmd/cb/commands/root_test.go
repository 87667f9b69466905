package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cloudnepal/Clipboard/pkg/clipboard"
)

func TestErrorMessageForMissingEntry(t *testing.T) {
	msg := errorMessage(&clipboard.EntryNotFoundError{Rank: 3})
	assert.Contains(t, msg, `"3"`)
	assert.Contains(t, msg, "doesn't exist")
}

func TestErrorMessagePassthrough(t *testing.T) {
	msg := errorMessage(errors.New("disk on fire"))
	assert.Equal(t, "disk on fire", msg)
}

func TestCommandTree(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"copy", "paste", "show", "history", "note", "trim", "clear"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}
