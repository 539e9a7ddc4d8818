//go:build darwin && !(cgo && machtime)

package osthread

import "golang.org/x/sys/unix"

const (
	clockSource       = ClockRawMonotonic
	clockID     int32 = unix.CLOCK_MONOTONIC_RAW
)
