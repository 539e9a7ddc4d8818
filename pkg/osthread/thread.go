package osthread

import "strconv"

// ThreadID identifies a thread within the current process.
//
// Goroutines are not pinned to threads: a goroutine that needs the same
// answer from two calls must hold runtime.LockOSThread in between.
type ThreadID uint64

// CurrentThreadID returns the identifier of the calling thread.
func CurrentThreadID() ThreadID {
	return currentThreadID()
}

// InvalidThreadID returns a sentinel that no live thread uses.
func InvalidThreadID() ThreadID {
	return invalidThreadID
}

// EqualThreadID reports whether a and b identify the same thread.
func EqualThreadID(a, b ThreadID) bool {
	return a == b
}

// SystemwideThreadID identifies a thread across process boundaries on
// the same host, for example when stored in shared memory.
type SystemwideThreadID struct {
	PID ProcessID
	TID ThreadID
}

// CurrentSystemwideThreadID returns the id of the calling thread qualified
// with the current process id.
func CurrentSystemwideThreadID() SystemwideThreadID {
	return SystemwideThreadID{
		PID: CurrentProcessID(),
		TID: CurrentThreadID(),
	}
}

// InvalidSystemwideThreadID combines the process and thread sentinels.
func InvalidSystemwideThreadID() SystemwideThreadID {
	return SystemwideThreadID{
		PID: InvalidProcessID(),
		TID: InvalidThreadID(),
	}
}

// EqualSystemwideThreadID reports whether both the process and the thread
// of a and b match.
func EqualSystemwideThreadID(a, b SystemwideThreadID) bool {
	return EqualThreadID(a.TID, b.TID) && a.PID == b.PID
}

// IsValid reports whether id differs from InvalidSystemwideThreadID.
func (id SystemwideThreadID) IsValid() bool {
	return !EqualSystemwideThreadID(id, InvalidSystemwideThreadID())
}

func (id SystemwideThreadID) String() string {
	return FormatProcessID(id.PID) + ":" + strconv.FormatUint(uint64(id.TID), 10)
}
