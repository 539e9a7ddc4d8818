//go:build darwin || openbsd || solaris

package osthread

import "runtime"

// yield goes through the Go scheduler where sched_yield is only reachable
// through libc.
func yield() {
	runtime.Gosched()
}
