package clipboard

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// lockPollInterval is how often a blocked acquirer re-probes the holder.
const lockPollInterval = 100 * time.Millisecond

// ProcessProber answers questions about other processes for lock liveness
// decisions. It exists so the lock is testable without spawning processes.
type ProcessProber interface {
	// Alive reports whether pid names a running process.
	Alive(pid int) bool
	// SameGroup reports whether pid shares the caller's process group.
	SameGroup(pid int) bool
}

// Lock is cross-process mutual exclusion for one clipboard root, backed by a
// readable PID record instead of an OS file lock. Keeping the holder's pid
// readable lets waiters probe liveness on any platform and lets both ends of
// a self-referencing pipeline like `cb | cb` recognize each other instead of
// deadlocking.
type Lock struct {
	path   string
	prober ProcessProber
	pid    func() int
	sleep  func(time.Duration)
}

// NewLock returns a lock over the given record path, wired to the real
// process table and clock.
func NewLock(path string) *Lock {
	return &Lock{
		path:   path,
		prober: systemProber{},
		pid:    os.Getpid,
		sleep:  time.Sleep,
	}
}

// Acquire blocks until the lock is held. If the current record names a
// process in the caller's own process group the lock counts as already held
// and the record is left untouched. Otherwise the acquirer polls every
// 100 ms until the holder dies or removes its record. There is no timeout: a
// holder that never exits blocks the waiter forever.
func (l *Lock) Acquire() error {
	for {
		pid, held := l.holder()
		if !held {
			return l.claim()
		}
		if l.prober.SameGroup(pid) {
			return nil
		}
		if !l.prober.Alive(pid) {
			return l.claim()
		}
		l.sleep(lockPollInterval)
	}
}

// Release removes the lock record. Releasing an unheld lock is a no-op.
func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clipboard: remove lock record: %w", err)
	}
	return nil
}

// Locked reports whether a lock record currently exists.
func (l *Lock) Locked() bool {
	return !isEmptyPath(l.path)
}

// holder reads the current record. A record that cannot be parsed names no
// live holder and is treated as stale, so the acquirer overwrites it.
func (l *Lock) holder() (int, bool) {
	b, err := os.ReadFile(l.path)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil {
		slog.Debug("clipboard: overwriting malformed lock record", "path", l.path)
		return 0, false
	}
	return pid, true
}

func (l *Lock) claim() error {
	if err := writeFileAtomic(l.path, []byte(strconv.Itoa(l.pid()))); err != nil {
		return fmt.Errorf("clipboard: write lock record: %w", err)
	}
	return nil
}
