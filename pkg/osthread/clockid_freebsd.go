package osthread

import "golang.org/x/sys/unix"

const (
	clockSource       = ClockPreciseMonotonic
	clockID     int32 = unix.CLOCK_MONOTONIC_PRECISE
)
