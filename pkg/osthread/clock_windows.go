package osthread

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// HighResCount is a monotonic clock sample. On Windows it is a count of
// performance counter ticks.
type HighResCount = Ticks

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	modntdll    = windows.NewLazySystemDLL("ntdll.dll")

	procQueryPerformanceCounter   = modkernel32.NewProc("QueryPerformanceCounter")
	procQueryPerformanceFrequency = modkernel32.NewProc("QueryPerformanceFrequency")
	procGetTickCount              = modkernel32.NewProc("GetTickCount")
	procSwitchToThread            = modkernel32.NewProc("SwitchToThread")
	procNtQueryTimerResolution    = modntdll.NewProc("NtQueryTimerResolution")
)

var activeClock clock = perfCounterClock{api: kernel32PerfCounter{}}

type kernel32PerfCounter struct{}

func (kernel32PerfCounter) QueryPerformanceCounter() (int64, bool) {
	var count int64
	r1, _, _ := procQueryPerformanceCounter.Call(uintptr(unsafe.Pointer(&count)))
	return count, r1 != 0
}

func (kernel32PerfCounter) QueryPerformanceFrequency() (int64, bool) {
	var freq int64
	r1, _, _ := procQueryPerformanceFrequency.Call(uintptr(unsafe.Pointer(&freq)))
	return freq, r1 != 0 && freq > 0
}

func (kernel32PerfCounter) TickCount() uint32 {
	r1, _, _ := procGetTickCount.Call()
	return uint32(r1)
}
