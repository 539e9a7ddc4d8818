package osthread

import (
	"context"
	"math"

	"github.com/containerd/log"
	"github.com/moby/osthread/pkg/sysinfo"
)

// NumCores returns the number of online logical processors. It is a sizing
// hint: when the system cannot answer, it returns 1.
func NumCores() uint32 {
	n, err := sysinfo.OnlineCPUs()
	if err != nil {
		log.G(context.TODO()).WithError(err).Debug("unable to query online processors, assuming 1")
		return 1
	}
	return clampCores(int64(n))
}

// clampCores maps a raw processor count onto [1, MaxUint32].
func clampCores(n int64) uint32 {
	switch {
	case n <= 0:
		return 1
	case n >= math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(n)
	}
}
