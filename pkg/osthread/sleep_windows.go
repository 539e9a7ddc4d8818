package osthread

import (
	"runtime"

	"golang.org/x/sys/windows"
)

// yield falls back to the Go scheduler when no other thread is ready to
// run on the current processor.
func yield() {
	if r1, _, _ := procSwitchToThread.Call(); r1 == 0 {
		runtime.Gosched()
	}
}

// sleepTimespec rounds up to whole milliseconds, the unit of SleepEx.
func sleepTimespec(ts Timespec) {
	ms := uint64(ts.Sec)*1000 + ceilDiv(uint64(ts.Nsec), 1_000_000)
	if ms > windows.INFINITE-1 {
		ms = windows.INFINITE - 1
	}
	windows.SleepEx(uint32(ms), false)
}
