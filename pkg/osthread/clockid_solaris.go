package osthread

const (
	clockSource = ClockHighRes
	// CLOCK_HIGHRES from <sys/time_impl.h>.
	clockID int32 = 4
)
