// Package pidfile provides structure and helper functions to create and remove
// PID file. A PID file is usually a file used to store the process ID of a
// running process.
package pidfile

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/moby/osthread/pkg/osthread"
	"github.com/moby/osthread/pkg/process"
)

// Read reads the "PID file" at path, and returns the PID if it contains a
// valid PID of a running process, or osthread.InvalidProcessID() otherwise.
// It returns an error when failing to read the file, or if the file doesn't
// exist, but malformed content is ignored. Consumers should therefore check
// the returned PID against the invalid sentinel before use.
func Read(path string) (osthread.ProcessID, error) {
	pidByte, err := os.ReadFile(path)
	if err != nil {
		return osthread.InvalidProcessID(), err
	}
	pid, err := strconv.Atoi(string(bytes.TrimSpace(pidByte)))
	if err != nil {
		return osthread.InvalidProcessID(), nil
	}
	if process.Alive(pid) {
		return osthread.ProcessID(pid), nil
	}
	return osthread.InvalidProcessID(), nil
}

// Write writes a "PID file" at the specified path. It returns an error if the
// file exists and contains a valid PID of a running process, or when failing
// to write the file.
func Write(path string, pid osthread.ProcessID) error {
	if pid < 1 {
		// We might be running as PID 1 when running in a container,
		// but 0 or negative PIDs are not acceptable.
		return fmt.Errorf("invalid PID (%d): only positive PIDs are allowed", pid)
	}
	oldPID, err := Read(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if oldPID != osthread.InvalidProcessID() && oldPID != pid {
		return fmt.Errorf("process with PID %d is still running", oldPID)
	}
	buf := make([]byte, 0, osthread.MaxProcessIDLen)
	return os.WriteFile(path, osthread.AppendProcessID(buf, pid), 0o644)
}

// WriteCurrent writes the PID of the calling process to path.
func WriteCurrent(path string) error {
	return Write(path, osthread.CurrentProcessID())
}
