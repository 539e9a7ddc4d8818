//go:build darwin || freebsd || netbsd || openbsd

package sysinfo

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

func sysctlNumCPU() (int, error) {
	n, err := unix.SysctlUint32("hw.ncpu")
	if err != nil {
		return 0, errors.Wrap(err, "sysctl hw.ncpu")
	}
	if n == 0 {
		return 0, errors.New("sysctl hw.ncpu returned 0")
	}
	return int(n), nil
}
