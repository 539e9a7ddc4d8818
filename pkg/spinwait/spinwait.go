// Package spinwait implements the backoff used by busy-wait loops: spin on
// the processor for a while, then yield the thread for about one scheduler
// tick, then sleep in half-tick steps.
package spinwait

import (
	"context"
	"math"
	"sync/atomic"

	"github.com/containerd/log"

	"github.com/moby/osthread/pkg/osthread"
)

// SpinLimit is the number of iterations spent spinning before a Waiter
// starts giving up the processor.
const SpinLimit = 32

// numCores is replaced in tests.
var numCores = osthread.NumCores

// Waiter tracks the progress of one wait loop. The zero value is ready to
// use. A Waiter must not be shared between goroutines.
type Waiter struct {
	k           uint32
	initialized bool
	start       osthread.HighResCount
	yieldOnly   osthread.HighResCount
}

// Yield performs one backoff step. On a single processor spinning cannot
// make progress, so the Waiter starts directly in the yield phase.
func (w *Waiter) Yield() {
	if !w.initialized {
		w.initialized = true
		if numCores() <= 1 {
			w.k = SpinLimit
		}
	}
	switch {
	case w.k < SpinLimit:
		spin(w.k)
	case w.k == SpinLimit:
		w.yieldOnly = osthread.SystemTickInHighResCounts()
		w.start = osthread.CurrentHighResCount()
		osthread.Yield()
	case w.yieldOrSleep():
		osthread.Yield()
	default:
		osthread.SleepTick()
	}
	if w.k < math.MaxUint32 {
		w.k++
	}
}

// Count returns the number of backoff steps taken since the last Reset.
func (w *Waiter) Count() uint32 {
	return w.k
}

// Reset returns the Waiter to the spinning phase.
func (w *Waiter) Reset() {
	*w = Waiter{}
}

// yieldOrSleep reports whether the next step should yield rather than
// sleep: yield until one scheduler tick has elapsed since spinning stopped.
// Without a usable tick value it alternates.
func (w *Waiter) yieldOrSleep() bool {
	if osthread.IsZero(w.yieldOnly) {
		return w.k&1 != 0
	}
	elapsed := osthread.Subtract(osthread.CurrentHighResCount(), w.start)
	return osthread.Less(elapsed, w.yieldOnly)
}

var spinSink atomic.Uint32

// spin burns a number of cycles proportional to k without giving up the
// processor.
func spin(k uint32) {
	for i := uint32(0); i <= k; i++ {
		spinSink.Load()
	}
}

// Until calls cond, backing off between calls, until it returns true or
// ctx is done.
func Until(ctx context.Context, cond func() bool) error {
	var w Waiter
	for !cond() {
		if err := ctx.Err(); err != nil {
			log.G(ctx).WithError(err).WithField("steps", w.Count()).Debug("spin wait abandoned")
			return err
		}
		w.Yield()
	}
	return nil
}
