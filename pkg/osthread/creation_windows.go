package osthread

import (
	"context"

	"github.com/containerd/log"
	"golang.org/x/sys/windows"
)

// ProcessCreationTime returns when the current process started, in
// seconds since the Unix epoch, or 0 if it cannot be determined.
func ProcessCreationTime() float64 {
	var creation, exit, kernel, user windows.Filetime
	if err := windows.GetProcessTimes(windows.CurrentProcess(), &creation, &exit, &kernel, &user); err != nil {
		log.G(context.TODO()).WithError(err).Debug("unable to read process times")
		return 0
	}
	return float64(creation.Nanoseconds()) / nanosPerSecond
}
