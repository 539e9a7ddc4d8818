package osthread

// Yield gives up the rest of the calling thread's time slice.
func Yield() {
	yield()
}

// Sleep suspends the calling thread for at least ms milliseconds. The
// system may wake it later than requested.
func Sleep(ms uint32) {
	sleepTimespec(millisToTimespec(ms))
}

// SleepTick suspends the calling thread for half a scheduler tick. Busy
// wait loops use it as a backoff step that is cheaper than a full tick.
func SleepTick() {
	sleepTimespec(nanosToTimespec(SystemTickNanoseconds() / 2))
}

func millisToTimespec(ms uint32) Timespec {
	return Timespec{
		Sec:  int64(ms / 1000),
		Nsec: int64(ms%1000) * 1_000_000,
	}
}
