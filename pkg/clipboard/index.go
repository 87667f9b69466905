package clipboard

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// Index is the ordered view of one clipboard's entries, newest first. It is
// a point-in-time snapshot of the entry storage directory: another process
// holding the lock may mutate the directory afterwards, so callers that need
// fresh state must re-scan after acquiring the lock themselves.
type Index struct {
	dir string
	ids []uint64
}

// scanIndex lists the entry storage directory and parses each child name as
// an entry id, skipping anything non-numeric. An empty directory yields the
// implicit empty entry with id 0.
func scanIndex(dir string) (*Index, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("clipboard: create entry storage directory: %w", err)
	}
	children, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("clipboard: scan entry storage directory: %w", err)
	}
	var ids []uint64
	for _, child := range children {
		id, err := strconv.ParseUint(child.Name(), 10, 64)
		if err != nil {
			slog.Debug("clipboard: skipping non-entry path", "name", child.Name())
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		ids = append(ids, 0)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	return &Index{dir: dir, ids: ids}, nil
}

// Len returns the number of entries in the index.
func (ix *Index) Len() int {
	return len(ix.ids)
}

// IDs returns a copy of the entry ids, newest first.
func (ix *Index) IDs() []uint64 {
	out := make([]uint64, len(ix.ids))
	copy(out, ix.ids)
	return out
}

// EntryPath resolves a logical rank (0 = newest) to the entry's directory.
// A rank outside the index bounds yields an EntryNotFoundError.
func (ix *Index) EntryPath(rank int) (string, error) {
	if rank < 0 || rank >= len(ix.ids) {
		return "", &EntryNotFoundError{Rank: rank}
	}
	return filepath.Join(ix.dir, strconv.FormatUint(ix.ids[rank], 10)), nil
}

// Allocate creates the next entry: id = current max + 1, prepended to the
// index, directory created on disk. Ids stay unique across processes only if
// the caller holds the clipboard lock.
func (ix *Index) Allocate() (string, error) {
	id := ix.ids[0] + 1
	path := filepath.Join(ix.dir, strconv.FormatUint(id, 10))
	if err := os.MkdirAll(path, 0o750); err != nil {
		return "", fmt.Errorf("clipboard: create entry %d: %w", id, err)
	}
	ix.ids = append([]uint64{id}, ix.ids...)
	return path, nil
}

// evictOldest removes the oldest entry's directory and drops its id from the
// index tail.
func (ix *Index) evictOldest() error {
	path, err := ix.EntryPath(len(ix.ids) - 1)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("clipboard: evict entry %s: %w", path, err)
	}
	ix.ids = ix.ids[:len(ix.ids)-1]
	return nil
}
