//go:build !windows && !darwin && !freebsd && !netbsd && !openbsd

package sysinfo

import "github.com/pkg/errors"

func sysctlNumCPU() (int, error) {
	return 0, errors.New("hw.ncpu is not available on this platform")
}
