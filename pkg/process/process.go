// Package process provides a set of basic functions to manage individual
// processes.
package process

// Alive returns true if process with a given pid is running. Non-positive
// pids, including the invalid-process sentinel, are never alive.
func Alive(pid int) bool {
	if pid < 1 {
		return false
	}
	return alive(pid)
}
