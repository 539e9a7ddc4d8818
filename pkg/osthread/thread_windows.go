package osthread

import "golang.org/x/sys/windows"

// Windows thread ids are multiples of four, so the all-ones 32-bit value is
// never handed out.
const invalidThreadID ThreadID = 0xffffffff

func currentThreadID() ThreadID {
	return ThreadID(windows.GetCurrentThreadId())
}
