//go:build openbsd || solaris || (darwin && !cgo)

package osthread

import "github.com/petermattis/goid"

// currentThreadID falls back to the goroutine id where x/sys exposes no
// kernel thread id. It is unique among live goroutines of the process,
// which is the scope ThreadID promises.
func currentThreadID() ThreadID {
	return ThreadID(goid.Get())
}
