package osthread

import (
	"strconv"
)

const nanosPerSecond = 1_000_000_000

// Timespec is a counter sample split into seconds and nanoseconds, as
// returned by clock_gettime. Nsec is always in the range [0, 1e9) for
// values produced by this package.
type Timespec struct {
	Sec  int64
	Nsec int64
}

// Sub returns t - u. When t.Nsec is smaller than u.Nsec one second is
// borrowed so the nanosecond field of the result never goes negative.
func (t Timespec) Sub(u Timespec) Timespec {
	if t.Nsec < u.Nsec {
		return Timespec{
			Sec:  t.Sec - 1 - u.Sec,
			Nsec: nanosPerSecond + t.Nsec - u.Nsec,
		}
	}
	return Timespec{
		Sec:  t.Sec - u.Sec,
		Nsec: t.Nsec - u.Nsec,
	}
}

// Less orders samples by seconds, then nanoseconds.
func (t Timespec) Less(u Timespec) bool {
	return t.Sec < u.Sec || (t.Sec == u.Sec && t.Nsec < u.Nsec)
}

// IsZero reports whether t is the uninitialized sample.
func (t Timespec) IsZero() bool {
	return t.Sec == 0 && t.Nsec == 0
}

func (t Timespec) String() string {
	return strconv.FormatInt(t.Sec, 10) + "s:" + strconv.FormatInt(t.Nsec, 10) + "ns"
}

func nanosToTimespec(ns uint64) Timespec {
	return Timespec{
		Sec:  int64(ns / nanosPerSecond),
		Nsec: int64(ns % nanosPerSecond),
	}
}

// Ticks is a counter sample expressed as a single count of native counter
// units (mach absolute time units or performance counter ticks).
type Ticks uint64

// Sub returns t - u.
func (t Ticks) Sub(u Ticks) Ticks {
	return t - u
}

// Less reports whether t < u.
func (t Ticks) Less(u Ticks) bool {
	return t < u
}

// IsZero reports whether t is the uninitialized sample.
func (t Ticks) IsZero() bool {
	return t == 0
}

func (t Ticks) String() string {
	return strconv.FormatUint(uint64(t), 10)
}

// Subtract returns a - b in the native representation of the active clock.
func Subtract(a, b HighResCount) HighResCount {
	return a.Sub(b)
}

// Less reports whether a was sampled before b.
func Less(a, b HighResCount) bool {
	return a.Less(b)
}

// IsZero reports whether c is the "uninitialized" sentinel.
func IsZero(c HighResCount) bool {
	return c.IsZero()
}

// ZeroHighResCount returns the "uninitialized" sentinel. A real clock read
// never produces it short of an extraordinary coincidence.
func ZeroHighResCount() HighResCount {
	var c HighResCount
	return c
}
