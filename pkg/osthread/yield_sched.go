//go:build linux || freebsd || netbsd

package osthread

import (
	"golang.org/x/sys/unix"
)

func yield() {
	_, _, _ = unix.Syscall(unix.SYS_SCHED_YIELD, 0, 0, 0)
}
