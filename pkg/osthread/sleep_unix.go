//go:build linux || freebsd || netbsd || openbsd || solaris

package osthread

import (
	"golang.org/x/sys/unix"
)

// sleepTimespec calls nanosleep, resuming with the remaining time when a
// signal interrupts it.
func sleepTimespec(ts Timespec) {
	req := unix.NsecToTimespec(ts.Sec*nanosPerSecond + ts.Nsec)
	for {
		var rem unix.Timespec
		err := unix.Nanosleep(&req, &rem)
		if err != unix.EINTR {
			return
		}
		req = rem
	}
}
