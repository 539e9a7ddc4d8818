package process

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/skip"

	"github.com/moby/osthread/pkg/osthread"
)

func TestAlive(t *testing.T) {
	for _, pid := range []int{0, -1, -123, int(osthread.InvalidProcessID())} {
		t.Run(fmt.Sprintf("invalid process (%d)", pid), func(t *testing.T) {
			assert.Check(t, !Alive(pid), "PID %d should not be alive", pid)
		})
	}
	t.Run("current process", func(t *testing.T) {
		pid := osthread.CurrentProcessID()
		assert.Check(t, Alive(int(pid)), "current PID (%d) should be alive", pid)
		assert.Check(t, Alive(os.Getpid()))
	})
	t.Run("exited process", func(t *testing.T) {
		skip.If(t, runtime.GOOS == "windows", "echo is a shell builtin on Windows")

		// Get a PID of an exited process.
		cmd := exec.Command("echo", "hello world")
		err := cmd.Run()
		assert.NilError(t, err)
		exitedPID := cmd.ProcessState.Pid()
		assert.Check(t, !Alive(exitedPID), "PID %d should not be alive", exitedPID)
	})
}
