package clipboard

import (
	"errors"
	"fmt"
)

// EntryNotFoundError reports a request for a history rank that the entry
// index does not contain. It is returned, never printed: only the CLI
// boundary decides how to surface it to the user.
type EntryNotFoundError struct {
	Rank int
}

func (e *EntryNotFoundError) Error() string {
	return fmt.Sprintf("clipboard: history entry %d doesn't exist", e.Rank)
}

// IsNotFound returns true if the error reports a missing history entry.
func IsNotFound(err error) bool {
	var e *EntryNotFoundError
	return errors.As(err, &e)
}
