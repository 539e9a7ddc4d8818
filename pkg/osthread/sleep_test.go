package osthread

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestMillisToTimespec(t *testing.T) {
	assert.Check(t, is.Equal(millisToTimespec(0), Timespec{}))
	assert.Check(t, is.Equal(millisToTimespec(50), Timespec{Nsec: 50_000_000}))
	assert.Check(t, is.Equal(millisToTimespec(2500), Timespec{Sec: 2, Nsec: 500_000_000}))
}

func TestSleepElapsed(t *testing.T) {
	t0 := CurrentHighResCount()
	Sleep(50)
	t1 := CurrentHighResCount()

	assert.Check(t, Less(t0, t1))
	elapsed := Subtract(t1, t0)
	assert.Check(t, !IsZero(elapsed))

	d := HighResCountDuration(elapsed)
	assert.Check(t, d >= 40*time.Millisecond, "slept only %s", d)
	assert.Check(t, d <= 500*time.Millisecond, "slept for %s", d)
}

func TestSleepTickAndYield(t *testing.T) {
	start := time.Now()
	SleepTick()
	Yield()
	// Half a tick is at most 500ms, even with a 1 Hz scheduler.
	assert.Check(t, time.Since(start) < 5*time.Second)
}
