package osthread

import "sync"

// defaultClockTicks is the scheduler frequency assumed when the system
// does not report one.
const defaultClockTicks = 100

var systemTickNanos = sync.OnceValue(querySystemTickNanoseconds)

// SystemTickNanoseconds returns the scheduler tick resolution in
// nanoseconds, rounded up. The value is read once per process.
func SystemTickNanoseconds() uint64 {
	return systemTickNanos()
}

// SystemTickMicroseconds returns SystemTickNanoseconds in microseconds,
// rounded up.
func SystemTickMicroseconds() uint64 {
	return ceilDiv(SystemTickNanoseconds(), 1000)
}

// SystemTickInHighResCounts returns the scheduler tick resolution in the
// units of CurrentHighResCount, so that elapsed counts can be compared
// against it directly.
func SystemTickInHighResCounts() HighResCount {
	return activeClock.tickCounts(SystemTickNanoseconds())
}

// tickNanosFromHz converts a ticks-per-second value to the length of one
// tick in nanoseconds, rounding up. Non-positive values are replaced by
// defaultClockTicks.
func tickNanosFromHz(hz int64) uint64 {
	if hz <= 0 {
		hz = defaultClockTicks
	}
	return (nanosPerSecond-1)/uint64(hz) + 1
}
