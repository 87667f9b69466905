// Package clipboard is the persistence and lifecycle layer behind the cb
// tool: a local, filesystem-backed, multi-process-safe versioned store of
// copied payloads. Each named clipboard owns a root directory holding a
// chronological history of entries plus a fixed set of metadata files; all
// cross-process coordination happens through plain files and directory
// listings, never through a database or OS lock primitive.
package clipboard

import (
	"fmt"
	"os"
	"path/filepath"
)

// Clipboard is a handle on one named clipboard's on-disk state: its root
// directory, entry index, active entry, and metadata file paths.
type Clipboard struct {
	Name       string
	Persistent bool

	root  string
	rank  int
	index *Index
	data  string // active entry directory
	raw   string // canonical raw payload path inside the active entry
	meta  Metadata
	lock  *Lock
}

// Open resolves the named clipboard's root, scans its entry index, and
// activates the entry at the given rank (0 = newest). The root, active entry
// directory, and metadata directory are created lazily and idempotently; the
// version marker is rewritten on every open.
func Open(res *Resolver, name string, rank int) (*Clipboard, error) {
	root := res.Root(name)
	index, err := scanIndex(filepath.Join(root, dataDirName))
	if err != nil {
		return nil, err
	}
	c := &Clipboard{
		Name:       name,
		Persistent: res.IsPersistent(name),
		root:       root,
		index:      index,
		meta:       metadataFor(root),
	}
	c.lock = NewLock(c.meta.Lock)
	if err := c.SetEntry(rank); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(c.data, 0o750); err != nil {
		return nil, fmt.Errorf("clipboard: create entry directory: %w", err)
	}
	if err := os.MkdirAll(c.meta.Dir, 0o750); err != nil {
		return nil, fmt.Errorf("clipboard: create metadata directory: %w", err)
	}
	if err := writeFileAtomic(c.meta.Version, []byte(StorageProtocolVersion)); err != nil {
		return nil, err
	}
	return c, nil
}

// Root returns the clipboard's root directory.
func (c *Clipboard) Root() string {
	return c.root
}

// Index returns the live entry index.
func (c *Clipboard) Index() *Index {
	return c.index
}

// Metadata returns the fixed metadata file paths.
func (c *Clipboard) Metadata() Metadata {
	return c.meta
}

// Lock returns the cross-process lock guarding this clipboard root.
func (c *Clipboard) Lock() *Lock {
	return c.lock
}

// DataDir returns the active entry's directory.
func (c *Clipboard) DataDir() string {
	return c.data
}

// RawPath returns the canonical raw payload path inside the active entry.
// The file exists only for single-item entries.
func (c *Clipboard) RawPath() string {
	return c.raw
}

// SetEntry switches the active entry to the given rank without mutating the
// index.
func (c *Clipboard) SetEntry(rank int) error {
	path, err := c.index.EntryPath(rank)
	if err != nil {
		return err
	}
	c.rank = rank
	c.data = path
	c.raw = filepath.Join(path, rawDataFileName)
	return nil
}

// NewEntry allocates a fresh entry (id = current max + 1) and makes it the
// active one. Call only while holding the Lock: unserialized allocation lets
// two processes claim the same id.
func (c *Clipboard) NewEntry() error {
	if _, err := c.index.Allocate(); err != nil {
		return err
	}
	return c.SetEntry(c.rank)
}

// EntryPath resolves a logical rank to its entry directory.
func (c *Clipboard) EntryPath(rank int) (string, error) {
	return c.index.EntryPath(rank)
}

// HoldsRawData reports whether the active entry carries a non-empty raw
// payload. A missing payload file answers false immediately, saving the
// directory scan.
func (c *Clipboard) HoldsRawData() bool {
	info, err := os.Stat(c.raw)
	if err != nil {
		return false
	}
	return info.Size() > 0
}

// HoldsDataInCurrentEntry reports whether the active entry holds anything at
// all, raw payload or item tree.
func (c *Clipboard) HoldsDataInCurrentEntry() bool {
	if isEmptyPath(c.data) {
		return false
	}
	if c.HoldsRawData() {
		return true
	}
	children, err := os.ReadDir(c.data)
	if err != nil {
		return false
	}
	for _, child := range children {
		if !isEmptyPath(filepath.Join(c.data, child.Name())) {
			return true
		}
	}
	return false
}

// HoldsData reports whether any entry across the whole history is non-empty.
func (c *Clipboard) HoldsData() bool {
	for rank := 0; rank < c.index.Len(); rank++ {
		path, err := c.index.EntryPath(rank)
		if err != nil {
			return false
		}
		if !isEmptyPath(path) {
			return true
		}
	}
	return false
}

// IsUnused reports whether the clipboard carries nothing worth keeping: no
// data in the active entry, no notes, no original-file mapping.
func (c *Clipboard) IsUnused() bool {
	if c.HoldsDataInCurrentEntry() {
		return false
	}
	if !isEmptyPath(c.meta.Notes) {
		return false
	}
	if !isEmptyPath(c.meta.OriginalFiles) {
		return false
	}
	return true
}

// ReadRaw returns the active entry's raw payload content.
func (c *Clipboard) ReadRaw() (string, error) {
	b, err := os.ReadFile(c.raw)
	if err != nil {
		return "", fmt.Errorf("clipboard: read raw payload: %w", err)
	}
	return string(b), nil
}

// WriteRaw replaces the active entry's raw payload atomically.
func (c *Clipboard) WriteRaw(content string) error {
	return writeFileAtomic(c.raw, []byte(content))
}

// ClearHistory removes every entry and resets the index to the implicit
// empty entry. Call only while holding the Lock.
func (c *Clipboard) ClearHistory() error {
	dir := filepath.Join(c.root, dataDirName)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("clipboard: clear history: %w", err)
	}
	index, err := scanIndex(dir)
	if err != nil {
		return err
	}
	c.index = index
	if err := c.SetEntry(0); err != nil {
		return err
	}
	if err := os.MkdirAll(c.data, 0o750); err != nil {
		return fmt.Errorf("clipboard: create entry directory: %w", err)
	}
	return nil
}

// Notes returns the clipboard's note text, or "" if none is set.
func (c *Clipboard) Notes() string {
	b, err := os.ReadFile(c.meta.Notes)
	if err != nil {
		return ""
	}
	return string(b)
}

// SetNotes replaces the clipboard's note text.
func (c *Clipboard) SetNotes(text string) error {
	return writeFileAtomic(c.meta.Notes, []byte(text))
}
