package clipboard

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// writeFileAtomic writes content via a temporary file and rename so that
// readers in other processes never observe a half-written file.
func writeFileAtomic(path string, content []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, content, 0o600); err != nil {
		return fmt.Errorf("clipboard: write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("clipboard: atomic rename %s: %w", path, err)
	}
	return nil
}

// fileLines returns the non-blank lines of a newline-delimited file, or nil
// if the file is missing or unreadable.
func fileLines(path string) []string {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimRight(line, "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// isEmptyPath reports whether path is an empty file or an empty directory.
// Any failure to inspect the path counts as empty, keeping read-path queries
// total.
func isEmptyPath(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return true
	}
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return true
		}
		return len(entries) == 0
	}
	return info.Size() == 0
}

// dirSize returns the total size in bytes of all regular files under root.
// Unreadable paths count as zero.
func dirSize(root string) uint64 {
	var total uint64
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.Type().IsRegular() {
			if info, err := d.Info(); err == nil {
				total += uint64(info.Size())
			}
		}
		return nil
	})
	return total
}
