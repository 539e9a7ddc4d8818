//go:build linux || freebsd || netbsd || openbsd || solaris || (darwin && !(cgo && machtime))

package osthread

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// HighResCount is a monotonic clock sample. On clock_gettime platforms it
// is a seconds/nanoseconds pair.
type HighResCount = Timespec

var activeClock clock = posixClock{
	source:  clockSource,
	id:      clockID,
	gettime: unixClockGettime,
}

func unixClockGettime(id int32) (Timespec, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(id, &ts); err != nil {
		return Timespec{}, errors.Wrapf(err, "clock_gettime(%d)", id)
	}
	sec, nsec := ts.Unix()
	return Timespec{Sec: sec, Nsec: nsec}, nil
}
