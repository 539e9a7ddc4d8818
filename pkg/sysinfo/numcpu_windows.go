package sysinfo

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// allProcessorGroups is ALL_PROCESSOR_GROUPS from winnt.h.
const allProcessorGroups = 0xffff

func onlineCPUs() (int, error) {
	n := windows.GetActiveProcessorCount(allProcessorGroups)
	if n == 0 {
		return 0, errors.New("GetActiveProcessorCount returned 0")
	}
	return int(n), nil
}
