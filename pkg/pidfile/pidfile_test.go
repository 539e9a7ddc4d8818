package pidfile

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	"gotest.tools/v3/skip"

	"github.com/moby/osthread/pkg/osthread"
)

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "testfile")

	err := Write(path, osthread.InvalidProcessID())
	assert.Check(t, is.Error(err, "invalid PID (0): only positive PIDs are allowed"))

	err = Write(path, -1)
	assert.Check(t, is.Error(err, "invalid PID (-1): only positive PIDs are allowed"))

	t.Run("write new PID file", func(t *testing.T) {
		err := WriteCurrent(path)
		assert.NilError(t, err)

		pid, err := Read(path)
		assert.NilError(t, err)
		assert.Check(t, is.Equal(pid, osthread.CurrentProcessID()))
	})

	t.Run("rewrite with the same PID", func(t *testing.T) {
		err := WriteCurrent(path)
		assert.NilError(t, err)
	})

	t.Run("PID file of a running process", func(t *testing.T) {
		skip.If(t, runtime.GOOS == "windows", "requires a unix sleep binary")

		cmd := exec.Command("sleep", "30")
		assert.NilError(t, cmd.Start())
		t.Cleanup(func() {
			_ = cmd.Process.Kill()
			_ = cmd.Wait()
		})

		other := filepath.Join(t.TempDir(), "other")
		err := Write(other, osthread.ProcessID(cmd.Process.Pid))
		assert.NilError(t, err)

		err = WriteCurrent(other)
		assert.Check(t, is.ErrorContains(err, "is still running"))
	})
}

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("non-existing pidFile", func(t *testing.T) {
		_, err := Read(filepath.Join(tmpDir, "nosuchfile"))
		assert.Check(t, is.ErrorIs(err, os.ErrNotExist))
	})

	t.Run("malformed content", func(t *testing.T) {
		pidFile := filepath.Join(tmpDir, "pidfile-malformed")
		err := os.WriteFile(pidFile, []byte("something that's not an integer"), 0o644)
		assert.NilError(t, err)
		pid, err := Read(pidFile)
		assert.NilError(t, err)
		assert.Check(t, is.Equal(pid, osthread.InvalidProcessID()))
	})

	t.Run("zero PID", func(t *testing.T) {
		pidFile := filepath.Join(tmpDir, "pidfile-zero")
		err := os.WriteFile(pidFile, []byte("0"), 0o644)
		assert.NilError(t, err)
		pid, err := Read(pidFile)
		assert.NilError(t, err)
		assert.Check(t, is.Equal(pid, osthread.InvalidProcessID()))
	})

	t.Run("current process pid with surrounding whitespace", func(t *testing.T) {
		pidFile := filepath.Join(tmpDir, "pidfile-current")
		content := "\n " + osthread.FormatProcessID(osthread.CurrentProcessID()) + " \n"
		err := os.WriteFile(pidFile, []byte(content), 0o644)
		assert.NilError(t, err)
		pid, err := Read(pidFile)
		assert.NilError(t, err)
		assert.Check(t, is.Equal(pid, osthread.CurrentProcessID()))
	})
}
