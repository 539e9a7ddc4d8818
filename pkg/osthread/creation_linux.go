package osthread

import (
	"context"

	"github.com/containerd/log"
	"github.com/pkg/errors"
	"github.com/prometheus/procfs"
)

// ProcessCreationTime returns when the current process started, in
// seconds since the Unix epoch, or 0 if it cannot be determined.
func ProcessCreationTime() float64 {
	start, err := selfStartTime()
	if err != nil {
		log.G(context.TODO()).WithError(err).Debug("unable to read process start time")
		return 0
	}
	return start
}

func selfStartTime() (float64, error) {
	p, err := procfs.Self()
	if err != nil {
		return 0, errors.Wrap(err, "open /proc/self")
	}
	stat, err := p.Stat()
	if err != nil {
		return 0, errors.Wrap(err, "read /proc/self/stat")
	}
	return stat.StartTime()
}
