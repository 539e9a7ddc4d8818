package osthread

import "golang.org/x/sys/unix"

func currentThreadID() ThreadID {
	lwp, _, _ := unix.RawSyscall(unix.SYS__LWP_SELF, 0, 0, 0)
	return ThreadID(lwp)
}
