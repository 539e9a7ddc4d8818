package osthread

import (
	"os"
	"strconv"
	"unsafe"
)

// ProcessID is an operating system process identifier.
type ProcessID int

// MaxProcessIDLen is the size of a buffer large enough to hold any
// ProcessID rendered in decimal, including a sign or terminator.
const MaxProcessIDLen = int(unsafe.Sizeof(ProcessID(0)))*3 + 1

// CurrentProcessID returns the identifier of the calling process.
func CurrentProcessID() ProcessID {
	return ProcessID(os.Getpid())
}

// InvalidProcessID returns the sentinel used for "no process". No live
// process has pid 0: on Unix it is the scheduler, on Windows the idle
// process, neither of which can call into this package.
func InvalidProcessID() ProcessID {
	return 0
}

// FormatProcessID renders pid in decimal.
func FormatProcessID(pid ProcessID) string {
	return strconv.Itoa(int(pid))
}

// AppendProcessID appends the decimal form of pid to dst.
func AppendProcessID(dst []byte, pid ProcessID) []byte {
	return strconv.AppendInt(dst, int64(pid), 10)
}
