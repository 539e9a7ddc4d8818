package sysinfo

import (
	"runtime"
)

// NumCPU returns the number of CPUs the Go scheduler may use, which takes
// the process affinity mask into account.
func NumCPU() int {
	return runtime.NumCPU()
}

// OnlineCPUs returns the number of logical processors currently online on
// the host, regardless of the affinity of this process.
func OnlineCPUs() (int, error) {
	return onlineCPUs()
}
