// Package logging routes the tool's debug logs to a session-scoped file.
// The store packages log skipped inputs and stolen locks through log/slog;
// enabling a session here gives those records a place to land without ever
// mixing them into clipboard output on stdout.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Session is one enabled debug-logging session backed by a single file.
type Session struct {
	file *os.File
	path string
}

// Enable opens a new session log file under dir and installs a debug-level
// slog handler writing to it as the default logger.
func Enable(dir string) (*Session, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("logging: create log directory: %w", err)
	}
	name := fmt.Sprintf("cb-%s-%s.log", time.Now().Format("20060102-150405"), uuid.NewString()[:8])
	path := filepath.Join(dir, name)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("logging: open session log: %w", err)
	}
	handler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(handler))
	return &Session{file: file, path: path}, nil
}

// Path returns the session log file's location.
func (s *Session) Path() string {
	return s.path
}

// Close flushes and closes the session log file.
func (s *Session) Close() error {
	return s.file.Close()
}
