package osthread

import (
	"fmt"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestTickNanosFromHz(t *testing.T) {
	for hz, expected := range map[int64]uint64{
		100:  10_000_000,
		250:  4_000_000,
		1000: 1_000_000,
		3:    333_333_334,
		1:    1_000_000_000,
		0:    10_000_000,
		-1:   10_000_000,
	} {
		t.Run(fmt.Sprintf("%d Hz", hz), func(t *testing.T) {
			assert.Check(t, is.Equal(tickNanosFromHz(hz), expected))
		})
	}
}

func TestCeilDiv(t *testing.T) {
	assert.Check(t, is.Equal(ceilDiv(0, 1000), uint64(0)))
	assert.Check(t, is.Equal(ceilDiv(1, 1000), uint64(1)))
	assert.Check(t, is.Equal(ceilDiv(1000, 1000), uint64(1)))
	assert.Check(t, is.Equal(ceilDiv(1001, 1000), uint64(2)))
}

func TestSystemTick(t *testing.T) {
	ns := SystemTickNanoseconds()
	assert.Assert(t, ns > 0)
	assert.Check(t, is.Equal(SystemTickMicroseconds(), (ns+999)/1000))

	for range 10 {
		assert.Check(t, is.Equal(SystemTickNanoseconds(), ns), "tick resolution changed mid-run")
	}
}

func TestSystemTickInHighResCounts(t *testing.T) {
	tick := SystemTickInHighResCounts()
	assert.Check(t, !IsZero(tick))
	assert.Check(t, HighResCountDuration(tick) > 0)
}
