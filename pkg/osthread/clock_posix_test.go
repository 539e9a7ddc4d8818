//go:build linux || freebsd || netbsd || openbsd || solaris || (darwin && !(cgo && machtime))

package osthread

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestBuildClockIsReadable(t *testing.T) {
	assert.Check(t, is.Equal(ActiveClockSource(), clockSource))

	ts, err := unixClockGettime(clockID)
	assert.NilError(t, err)
	assert.Check(t, !ts.IsZero())
	assert.Check(t, ts.Nsec >= 0 && ts.Nsec < nanosPerSecond, "nsec out of range: %d", ts.Nsec)
}

func TestUnknownClockFails(t *testing.T) {
	const bogus = 1 << 20
	_, err := unixClockGettime(bogus)
	assert.Check(t, is.ErrorContains(err, "clock_gettime(1048576)"))
}
