package clipboard

import (
	"crypto/sha512"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// HoldsIgnoreRegexes reports whether the clipboard has a non-empty ignore
// rule file.
func (c *Clipboard) HoldsIgnoreRegexes() bool {
	return !isEmptyPath(c.meta.Ignore)
}

// HoldsIgnoreSecrets reports whether the clipboard has a non-empty secret
// digest file.
func (c *Clipboard) HoldsIgnoreSecrets() bool {
	return !isEmptyPath(c.meta.IgnoreSecret)
}

// IgnoreRegexes returns the compiled ignore patterns, one per line of the
// rule file. Lines that fail to compile are skipped; one bad rule must not
// disable the store.
func (c *Clipboard) IgnoreRegexes() []*regexp.Regexp {
	var regexes []*regexp.Regexp
	for _, line := range fileLines(c.meta.Ignore) {
		re, err := regexp.Compile(line)
		if err != nil {
			slog.Debug("clipboard: skipping invalid ignore pattern", "pattern", line, "err", err)
			continue
		}
		regexes = append(regexes, re)
	}
	return regexes
}

// IgnoreSecrets returns the configured secret digests, one lowercase hex
// SHA-512 string per line.
func (c *Clipboard) IgnoreSecrets() []string {
	return fileLines(c.meta.IgnoreSecret)
}

// SetIgnoreRegexes replaces the ignore rule file with the given patterns.
func (c *Clipboard) SetIgnoreRegexes(patterns []string) error {
	return writeFileAtomic(c.meta.Ignore, []byte(joinLines(patterns)))
}

// SetIgnoreSecrets replaces the secret digest file with the given digests.
func (c *Clipboard) SetIgnoreSecrets(digests []string) error {
	return writeFileAtomic(c.meta.IgnoreSecret, []byte(joinLines(digests)))
}

// ApplyIgnoreRules runs the regex pass and the secret pass over the active
// entry. Both passes are destructive: matched content is gone for good.
//
// Regex pass: for a single-item entry, every matching substring of every
// pattern is removed from the payload and the payload is rewritten. For a
// multi-item entry, any child whose name fully matches a pattern is deleted
// recursively.
//
// Secret pass (single-item entries only): the payload's SHA-512 digest is
// compared against each configured digest in order; on the first match the
// payload is blanked and the pass stops.
func (c *Clipboard) ApplyIgnoreRules() error {
	if c.HoldsIgnoreRegexes() {
		regexes := c.IgnoreRegexes()
		if c.HoldsRawData() {
			content, err := c.ReadRaw()
			if err != nil {
				return err
			}
			for _, re := range regexes {
				content = re.ReplaceAllString(content, "")
			}
			if err := c.WriteRaw(content); err != nil {
				return err
			}
		} else if err := c.removeMatchingItems(regexes); err != nil {
			return err
		}
	}

	if c.HoldsIgnoreSecrets() {
		if !c.HoldsRawData() {
			return nil
		}
		content, err := c.ReadRaw()
		if err != nil {
			return err
		}
		sum := sha512.Sum512([]byte(content))
		digest := hex.EncodeToString(sum[:])
		for _, secret := range c.IgnoreSecrets() {
			if digest == secret {
				if err := c.WriteRaw(""); err != nil {
					return err
				}
				break
			}
		}
	}
	return nil
}

// removeMatchingItems deletes children of the active entry whose names fully
// match any of the given patterns. This is a name match, never a content
// match.
func (c *Clipboard) removeMatchingItems(regexes []*regexp.Regexp) error {
	children, err := os.ReadDir(c.data)
	if err != nil {
		return nil
	}
	for _, re := range regexes {
		full, err := regexp.Compile("^(?:" + re.String() + ")$")
		if err != nil {
			continue
		}
		for _, child := range children {
			if !full.MatchString(child.Name()) {
				continue
			}
			if err := os.RemoveAll(filepath.Join(c.data, child.Name())); err != nil {
				return err
			}
		}
	}
	return nil
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
