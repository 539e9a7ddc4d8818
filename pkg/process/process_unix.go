//go:build !windows

package process

import (
	"golang.org/x/sys/unix"
)

// alive probes the pid with signal 0. EPERM means the process exists but
// belongs to another user.
func alive(pid int) bool {
	err := unix.Kill(pid, 0)
	return err == nil || err == unix.EPERM
}
