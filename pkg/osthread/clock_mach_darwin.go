//go:build darwin && cgo && machtime

package osthread

/*
#include <mach/mach_time.h>

static void timebase(uint32_t *numer, uint32_t *denom) {
	mach_timebase_info_data_t info;
	mach_timebase_info(&info);
	*numer = info.numer;
	*denom = info.denom;
}
*/
import "C"

import "sync"

// HighResCount is a monotonic clock sample. With mach_absolute_time it is a
// single count of absolute time units.
type HighResCount = Ticks

var activeClock clock = machClock{api: &darwinMach{}}

type darwinMach struct {
	once         sync.Once
	numer, denom uint32
}

func (*darwinMach) AbsoluteTime() uint64 {
	return uint64(C.mach_absolute_time())
}

// TimebaseInfo does not change while the machine is up, so it is read once.
func (m *darwinMach) TimebaseInfo() (uint32, uint32) {
	m.once.Do(func() {
		var numer, denom C.uint32_t
		C.timebase(&numer, &denom)
		m.numer, m.denom = uint32(numer), uint32(denom)
	})
	return m.numer, m.denom
}
