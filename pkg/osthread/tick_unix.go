//go:build linux || darwin || freebsd || netbsd || openbsd || solaris

package osthread

import (
	"context"

	"github.com/containerd/log"
	"github.com/tklauser/go-sysconf"
)

func querySystemTickNanoseconds() uint64 {
	hz, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil || hz <= 0 {
		log.G(context.TODO()).WithError(err).WithField("clk_tck", hz).Debugf("unable to read scheduler tick, assuming %d Hz", defaultClockTicks)
	}
	return tickNanosFromHz(hz)
}
