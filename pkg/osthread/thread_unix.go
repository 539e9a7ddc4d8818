//go:build !windows

package osthread

// Kernel thread ids and goroutine ids both start above zero.
const invalidThreadID ThreadID = 0
