package clipboard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Resolver maps clipboard names to root directories in one of two
// namespaces: persistent storage, which survives reboots, and temporary
// storage, which lives under the system temp directory.
type Resolver struct {
	persistentDir string
	temporaryDir  string
	alwaysPersist bool
	persistGlobs  []glob.Glob
}

// ResolverOptions configures a Resolver. Zero values select the defaults:
// persistent storage under ~/.clipboard and temporary storage under the
// system temp directory.
type ResolverOptions struct {
	PersistentDir   string
	TemporaryDir    string
	AlwaysPersist   bool
	PersistPatterns []string
}

// NewResolver builds a Resolver from the given options. PersistPatterns are
// glob patterns matched against clipboard names; a malformed pattern is a
// configuration error and fails construction.
func NewResolver(opts ResolverOptions) (*Resolver, error) {
	r := &Resolver{
		persistentDir: opts.PersistentDir,
		temporaryDir:  opts.TemporaryDir,
		alwaysPersist: opts.AlwaysPersist,
	}
	if r.persistentDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("clipboard: resolve user home directory: %w", err)
		}
		r.persistentDir = filepath.Join(homeDir, ".clipboard")
	}
	if r.temporaryDir == "" {
		r.temporaryDir = filepath.Join(os.TempDir(), "Clipboard")
	}
	for _, pattern := range opts.PersistPatterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("clipboard: compile persist pattern %q: %w", pattern, err)
		}
		r.persistGlobs = append(r.persistGlobs, g)
	}
	return r, nil
}

// IsPersistent reports whether the named clipboard belongs in the persistent
// namespace: names starting with "_" always do, as does anything matching a
// configured persist pattern.
func (r *Resolver) IsPersistent(name string) bool {
	if r.alwaysPersist || strings.HasPrefix(name, "_") {
		return true
	}
	for _, g := range r.persistGlobs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Root returns the root directory for the named clipboard.
func (r *Resolver) Root(name string) string {
	if r.IsPersistent(name) {
		return filepath.Join(r.persistentDir, name)
	}
	return filepath.Join(r.temporaryDir, name)
}

// Metadata holds the fixed metadata file paths of one clipboard root.
type Metadata struct {
	Dir           string
	Ignore        string
	IgnoreSecret  string
	Lock          string
	Notes         string
	OriginalFiles string
	Script        string
	ScriptConfig  string
	Version       string
}

func metadataFor(root string) Metadata {
	dir := filepath.Join(root, metadataDirName)
	return Metadata{
		Dir:           dir,
		Ignore:        filepath.Join(dir, ignoreFileName),
		IgnoreSecret:  filepath.Join(dir, ignoreSecretFileName),
		Lock:          filepath.Join(dir, lockFileName),
		Notes:         filepath.Join(dir, notesFileName),
		OriginalFiles: filepath.Join(dir, originalFilesFileName),
		Script:        filepath.Join(dir, scriptFileName),
		ScriptConfig:  filepath.Join(dir, scriptConfigFileName),
		Version:       filepath.Join(dir, versionFileName),
	}
}
