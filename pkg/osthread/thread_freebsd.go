package osthread

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

func currentThreadID() ThreadID {
	var tid int64
	_, _, _ = unix.RawSyscall(unix.SYS_THR_SELF, uintptr(unsafe.Pointer(&tid)), 0, 0)
	return ThreadID(tid)
}
