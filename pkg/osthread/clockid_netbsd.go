package osthread

const (
	clockSource = ClockMonotonic
	// CLOCK_MONOTONIC from <sys/time.h>.
	clockID int32 = 3
)
