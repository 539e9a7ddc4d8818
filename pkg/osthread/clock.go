package osthread

import (
	"context"
	"math/bits"
	"sync"
	"time"

	"github.com/containerd/log"
)

// ClockSource identifies the monotonic clock a build samples from.
type ClockSource int

const (
	// ClockPreciseMonotonic is CLOCK_MONOTONIC_PRECISE (FreeBSD).
	ClockPreciseMonotonic ClockSource = iota + 1
	// ClockRawMonotonic is CLOCK_MONOTONIC_RAW (Linux, Darwin).
	ClockRawMonotonic
	// ClockHighRes is CLOCK_HIGHRES (Solaris, illumos).
	ClockHighRes
	// ClockMonotonic is the generic POSIX CLOCK_MONOTONIC.
	ClockMonotonic
	// ClockMachAbsoluteTime is mach_absolute_time (Darwin, cgo + machtime tag).
	ClockMachAbsoluteTime
	// ClockPerformanceCounter is QueryPerformanceCounter (Windows).
	ClockPerformanceCounter
)

func (c ClockSource) String() string {
	switch c {
	case ClockPreciseMonotonic:
		return "bsd-precise-monotonic"
	case ClockRawMonotonic:
		return "linux-raw-monotonic"
	case ClockHighRes:
		return "solaris-high-res"
	case ClockMonotonic:
		return "posix-monotonic"
	case ClockMachAbsoluteTime:
		return "apple-mach-absolute-time"
	case ClockPerformanceCounter:
		return "windows-performance-counter"
	default:
		return "unknown"
	}
}

// clock is implemented by the clock source selected for the build.
// HighResCount is an alias for the representation that source produces.
type clock interface {
	kind() ClockSource
	now() HighResCount
	tickCounts(tickNanos uint64) HighResCount
	duration(c HighResCount) time.Duration
}

// ActiveClockSource returns the clock source compiled into this binary.
func ActiveClockSource() ClockSource {
	return activeClock.kind()
}

// CurrentHighResCount samples the monotonic clock.
func CurrentHighResCount() HighResCount {
	return activeClock.now()
}

// HighResCountDuration converts a count, usually the difference of two
// samples, into a time.Duration.
func HighResCountDuration(c HighResCount) time.Duration {
	return activeClock.duration(c)
}

// clockGettimeFunc reads clock id into a Timespec.
type clockGettimeFunc func(id int32) (Timespec, error)

// posixClock samples one of the clock_gettime clocks.
type posixClock struct {
	source  ClockSource
	id      int32
	gettime clockGettimeFunc
}

func (c posixClock) kind() ClockSource { return c.source }

// clockErrorOnce limits clock read failures to a single log entry.
var clockErrorOnce sync.Once

// now returns the zero sample when the clock cannot be read. The clock id
// was chosen at build time, so only the first failure is logged.
func (c posixClock) now() Timespec {
	ts, err := c.gettime(c.id)
	if err != nil {
		clockErrorOnce.Do(func() {
			log.G(context.TODO()).WithError(err).WithField("clock", c.source.String()).Debug("failed to read monotonic clock")
		})
		return Timespec{}
	}
	return ts
}

func (c posixClock) tickCounts(tickNanos uint64) Timespec {
	return nanosToTimespec(tickNanos)
}

func (c posixClock) duration(t Timespec) time.Duration {
	return time.Duration(t.Sec)*time.Second + time.Duration(t.Nsec)
}

// machAPI is the subset of the mach time interface used by machClock.
type machAPI interface {
	AbsoluteTime() uint64
	// TimebaseInfo returns the ratio that converts absolute time units
	// to nanoseconds.
	TimebaseInfo() (numer, denom uint32)
}

type machClock struct {
	api machAPI
}

func (c machClock) kind() ClockSource { return ClockMachAbsoluteTime }

func (c machClock) now() Ticks {
	return Ticks(c.api.AbsoluteTime())
}

func (c machClock) tickCounts(tickNanos uint64) Ticks {
	numer, denom := c.api.TimebaseInfo()
	return machTicksFromNanos(tickNanos, numer, denom)
}

func (c machClock) duration(t Ticks) time.Duration {
	numer, denom := c.api.TimebaseInfo()
	return time.Duration(machNanosFromTicks(uint64(t), numer, denom))
}

// machTicksFromNanos divides ns by the numer/denom timebase ratio. The
// division is done in floating point and truncated, matching the mach
// documentation's conversion.
func machTicksFromNanos(ns uint64, numer, denom uint32) Ticks {
	if numer == 0 || denom == 0 {
		return Ticks(ns)
	}
	return Ticks(float64(ns) / (float64(numer) / float64(denom)))
}

func machNanosFromTicks(t uint64, numer, denom uint32) uint64 {
	if numer == 0 || denom == 0 || numer == denom {
		return t
	}
	hi, lo := bits.Mul64(t, uint64(numer))
	if hi >= uint64(denom) {
		return 1<<64 - 1
	}
	q, _ := bits.Div64(hi, lo, uint64(denom))
	return q
}

// perfCounterAPI is the subset of the Windows performance counter and tick
// count interface used by perfCounterClock.
type perfCounterAPI interface {
	QueryPerformanceCounter() (int64, bool)
	QueryPerformanceFrequency() (int64, bool)
	// TickCount returns milliseconds since boot.
	TickCount() uint32
}

type perfCounterClock struct {
	api perfCounterAPI
}

func (c perfCounterClock) kind() ClockSource { return ClockPerformanceCounter }

// now falls back to the millisecond tick count if the performance counter
// cannot be read.
func (c perfCounterClock) now() Ticks {
	if count, ok := c.api.QueryPerformanceCounter(); ok {
		return Ticks(count)
	}
	return Ticks(c.api.TickCount())
}

func (c perfCounterClock) tickCounts(tickNanos uint64) Ticks {
	freq, ok := c.api.QueryPerformanceFrequency()
	if !ok {
		freq = 0
	}
	return perfCounterTicks(ceilDiv(tickNanos, 100), freq)
}

func (c perfCounterClock) duration(t Ticks) time.Duration {
	freq, ok := c.api.QueryPerformanceFrequency()
	if !ok || freq <= 0 {
		return time.Duration(t) * time.Millisecond
	}
	f := uint64(freq)
	whole, rem := uint64(t)/f, uint64(t)%f
	return time.Duration(whole)*time.Second + time.Duration(rem*nanosPerSecond/f)
}

// perfCounterTicks expresses a timer resolution given in hundreds of
// nanoseconds as a number of performance counter ticks, rounding up.
// Without a counter frequency the result is in milliseconds, the unit of
// the tick count fallback.
func perfCounterTicks(res100ns uint64, freq int64) Ticks {
	if freq <= 0 {
		if res100ns == 0 {
			return 0
		}
		return Ticks((res100ns-1)/10_000 + 1)
	}
	// Length of one counter tick in femtoseconds.
	countFs := (uint64(1_000_000_000_000_000)-1)/uint64(freq) + 1
	if res100ns == 0 {
		return 0
	}
	return Ticks((res100ns*100_000_000-1)/countFs + 1)
}

func ceilDiv(n, d uint64) uint64 {
	if n == 0 {
		return 0
	}
	return (n-1)/d + 1
}
