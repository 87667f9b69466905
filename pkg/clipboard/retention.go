package clipboard

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

var timeNow = time.Now // injected for testability

// Budget holds the parsed retention limits for one clipboard. A zero value
// on any axis disables that axis.
type Budget struct {
	MaxBytes   uint64
	MaxAge     time.Duration
	MaxEntries int
}

// ParseBudget parses a whitespace-separated budget string into the three
// retention axes. Each token's unit suffix selects an axis, matched
// case-insensitively: b/kb/mb/gb/tb bound total bytes (1024-based),
// s/h/d/w/m/y bound entry age (30-day months, 365-day years), and a bare
// number bounds the entry count. Unparsable tokens are skipped; a budget
// string is never a reason to fail.
func ParseBudget(s string) Budget {
	var b Budget
	for _, token := range strings.Fields(s) {
		lower := strings.ToLower(token)
		num := strings.TrimRight(lower, "abcdefghijklmnopqrstuvwxyz")
		suffix := lower[len(num):]

		if suffix == "" {
			n, err := strconv.ParseUint(num, 10, 64)
			if err != nil {
				slog.Debug("clipboard: skipping retention token", "token", token)
				continue
			}
			b.MaxEntries = int(n)
			continue
		}

		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			slog.Debug("clipboard: skipping retention token", "token", token)
			continue
		}
		switch suffix {
		case "b":
			b.MaxBytes = uint64(v)
		case "kb":
			b.MaxBytes = uint64(v * 1024)
		case "mb":
			b.MaxBytes = uint64(v * 1024 * 1024)
		case "gb":
			b.MaxBytes = uint64(v * 1024 * 1024 * 1024)
		case "tb":
			b.MaxBytes = uint64(v * 1024 * 1024 * 1024 * 1024)
		case "s":
			b.MaxAge = time.Duration(v * float64(time.Second))
		case "h":
			b.MaxAge = time.Duration(v * float64(time.Hour))
		case "d":
			b.MaxAge = time.Duration(v * 24 * float64(time.Hour))
		case "w":
			b.MaxAge = time.Duration(v * 24 * 7 * float64(time.Hour))
		case "m":
			b.MaxAge = time.Duration(v * 24 * 30 * float64(time.Hour))
		case "y":
			b.MaxAge = time.Duration(v * 24 * 365 * float64(time.Hour))
		default:
			slog.Debug("clipboard: skipping retention token", "token", token)
		}
	}
	return b
}

// Manager enforces retention budgets over a clipboard's entry history. The
// budget is an explicit constructor argument, never ambient state.
type Manager struct {
	budget Budget
}

// NewManager returns a Manager enforcing the given budget.
func NewManager(budget Budget) *Manager {
	return &Manager{budget: budget}
}

// Trim evicts oldest entries until every configured axis is satisfied. Axes
// run in a fixed order: bytes, then age, then count, each over the index
// state the previous axis left behind. The byte axis measures the root once
// and keeps a running total as it evicts. No axis ever evicts the final
// remaining entry, so trim always terminates even when a single entry
// exceeds the byte budget.
func (m *Manager) Trim(c *Clipboard) error {
	if m.budget.MaxBytes > 0 {
		total := dirSize(c.root)
		for total > m.budget.MaxBytes && c.index.Len() > 1 {
			oldest, err := c.index.EntryPath(c.index.Len() - 1)
			if err != nil {
				return err
			}
			size := dirSize(oldest)
			if err := c.index.evictOldest(); err != nil {
				return err
			}
			if size > total {
				total = 0
			} else {
				total -= size
			}
		}
	}

	if m.budget.MaxAge > 0 {
		cutoff := timeNow().Add(-m.budget.MaxAge)
		for c.index.Len() > 1 {
			oldest, err := c.index.EntryPath(c.index.Len() - 1)
			if err != nil {
				return err
			}
			if !entryModTime(oldest).Before(cutoff) {
				break
			}
			if err := c.index.evictOldest(); err != nil {
				return err
			}
		}
	}

	if m.budget.MaxEntries > 0 {
		for c.index.Len() > m.budget.MaxEntries {
			if err := c.index.evictOldest(); err != nil {
				return err
			}
		}
	}
	return nil
}

// entryModTime returns the entry directory's last-modified time. When the
// stat fails the entry counts as modified now, which the age axis never
// evicts.
func entryModTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return timeNow()
	}
	return info.ModTime()
}
