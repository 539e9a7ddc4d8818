//go:build darwin && cgo

package osthread

/*
#include <pthread.h>
#include <stdint.h>

static uint64_t current_tid(void) {
	uint64_t tid = 0;
	pthread_threadid_np(NULL, &tid);
	return tid;
}
*/
import "C"

func currentThreadID() ThreadID {
	return ThreadID(C.current_tid())
}
