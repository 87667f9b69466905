//go:build windows

package clipboard

import (
	"os"

	"golang.org/x/sys/windows"
)

// systemProber probes the real process table.
type systemProber struct{}

// Alive opens the process for synchronization and checks whether it has
// already exited. Any failure counts as dead.
func (systemProber) Alive(pid int) bool {
	h, err := windows.OpenProcess(windows.SYNCHRONIZE, false, uint32(pid))
	if err != nil {
		return false
	}
	defer windows.CloseHandle(h)
	status, err := windows.WaitForSingleObject(h, 0)
	if err != nil {
		return false
	}
	return status == uint32(windows.WAIT_TIMEOUT)
}

// SameGroup degrades to a same-process check; Windows has no process groups
// in the POSIX sense.
func (systemProber) SameGroup(pid int) bool {
	return pid == os.Getpid()
}
