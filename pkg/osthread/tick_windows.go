package osthread

import (
	"context"
	"unsafe"

	"github.com/containerd/log"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// defaultTimerResolution is the stock Windows timer interval (15.625ms) in
// hundreds of nanoseconds.
const defaultTimerResolution = 156250

func querySystemTickNanoseconds() uint64 {
	res, err := currentTimerResolution()
	if err != nil {
		log.G(context.TODO()).WithError(err).Debug("unable to read timer resolution, assuming 15.625ms")
		res = defaultTimerResolution
	}
	return uint64(res) * 100
}

// currentTimerResolution returns the current timer interval in hundreds of
// nanoseconds.
func currentTimerResolution() (uint32, error) {
	var maximum, minimum, current uint32
	r1, _, _ := procNtQueryTimerResolution.Call(
		uintptr(unsafe.Pointer(&maximum)),
		uintptr(unsafe.Pointer(&minimum)),
		uintptr(unsafe.Pointer(&current)),
	)
	if status := windows.NTStatus(r1); status != windows.STATUS_SUCCESS {
		return 0, errors.Wrap(status, "NtQueryTimerResolution")
	}
	if current == 0 {
		return 0, errors.New("NtQueryTimerResolution returned a zero resolution")
	}
	return current, nil
}
