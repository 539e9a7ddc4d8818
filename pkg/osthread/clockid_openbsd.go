package osthread

import "golang.org/x/sys/unix"

const (
	clockSource       = ClockMonotonic
	clockID     int32 = unix.CLOCK_MONOTONIC
)
