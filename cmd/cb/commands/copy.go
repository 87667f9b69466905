package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	osclip "github.com/atotto/clipboard"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cloudnepal/Clipboard/pkg/clipboard"
)

var copyCmd = &cobra.Command{
	Use:   "copy [files...]",
	Short: "Copy stdin or the given files into a new history entry",
	RunE:  runCopy,
}

func runCopy(cmd *cobra.Command, args []string) error {
	cb, cfg, err := openClipboard(0)
	if err != nil {
		return err
	}
	lock := cb.Lock()
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer lock.Release()

	// The pre-lock index is a stale snapshot; re-scan now that mutations
	// are serialized behind the lock.
	cb, cfg, err = openClipboard(0)
	if err != nil {
		return err
	}
	if err := cb.NewEntry(); err != nil {
		return err
	}

	if len(args) == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		if err := cb.WriteRaw(string(b)); err != nil {
			return err
		}
		if utf8.Valid(b) {
			// The store is the source of truth; the OS clipboard mirror is
			// best-effort.
			_ = osclip.WriteAll(string(b))
		}
	} else if err := stageFiles(cb, args); err != nil {
		return err
	}

	if err := cb.ApplyIgnoreRules(); err != nil {
		return err
	}
	if err := clipboard.NewManager(clipboard.ParseBudget(cfg.History)).Trim(cb); err != nil {
		return err
	}
	printSuccess("Copied into clipboard %s (entry %d of %d)", cb.Name, 0, cb.Index().Len())
	return nil
}

// stageFiles copies the named files into a staging directory first, then
// moves them into the active entry, so a failed copy never leaves a
// half-filled entry behind.
func stageFiles(cb *clipboard.Clipboard, paths []string) error {
	staging := filepath.Join(os.TempDir(), "Clipboard", "staging-"+uuid.NewString())
	if err := os.MkdirAll(staging, 0o750); err != nil {
		return fmt.Errorf("create staging directory: %w", err)
	}
	defer os.RemoveAll(staging)

	for _, src := range paths {
		if err := copyPath(src, filepath.Join(staging, filepath.Base(src))); err != nil {
			return err
		}
	}

	staged, err := os.ReadDir(staging)
	if err != nil {
		return fmt.Errorf("read staging directory: %w", err)
	}
	for _, item := range staged {
		dst := filepath.Join(cb.DataDir(), item.Name())
		if err := os.RemoveAll(dst); err != nil {
			return err
		}
		if err := os.Rename(filepath.Join(staging, item.Name()), dst); err != nil {
			// Rename fails across filesystems; fall back to a plain copy.
			if err := copyPath(filepath.Join(staging, item.Name()), dst); err != nil {
				return err
			}
		}
	}
	return nil
}

// copyPath copies a file or directory tree from src to dst.
func copyPath(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	if info.IsDir() {
		if err := os.MkdirAll(dst, 0o750); err != nil {
			return err
		}
		children, err := os.ReadDir(src)
		if err != nil {
			return err
		}
		for _, child := range children {
			if err := copyPath(filepath.Join(src, child.Name()), filepath.Join(dst, child.Name())); err != nil {
				return err
			}
		}
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	defer in.Close()
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("copy to %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}
