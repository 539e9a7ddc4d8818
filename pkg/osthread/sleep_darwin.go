package osthread

import "time"

// x/sys has no nanosleep for darwin; the runtime timer sleeps the goroutine
// for the same split.
func sleepTimespec(ts Timespec) {
	time.Sleep(time.Duration(ts.Sec)*time.Second + time.Duration(ts.Nsec))
}
