//go:build !windows

package sysinfo

import (
	"github.com/pkg/errors"
	"github.com/tklauser/numcpus"
)

func onlineCPUs() (int, error) {
	n, err := numcpus.GetOnline()
	if err == nil && n > 0 {
		return n, nil
	}
	if fallback, ferr := sysctlNumCPU(); ferr == nil {
		return fallback, nil
	}
	if err == nil {
		err = errors.Errorf("invalid online processor count: %d", n)
	}
	return 0, errors.Wrap(err, "query online processors")
}
