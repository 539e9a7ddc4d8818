package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/containerd/log"
	units "github.com/docker/go-units"

	"github.com/moby/osthread/internal/config"
	"github.com/moby/osthread/pkg/osthread"
	"github.com/moby/osthread/pkg/sysinfo"
)

type hostInfo struct {
	OS               string    `json:"os"`
	Arch             string    `json:"arch"`
	PID              int       `json:"pid"`
	Thread           string    `json:"thread"`
	ClockSource      string    `json:"clock_source"`
	Count            string    `json:"count"`
	TickNanoseconds  uint64    `json:"tick_ns"`
	TickMicroseconds uint64    `json:"tick_us"`
	TickCounts       string    `json:"tick_counts"`
	Cores            uint32    `json:"cores"`
	SchedulerCPUs    int       `json:"scheduler_cpus"`
	StartedAt        time.Time `json:"started_at,omitzero"`
}

func collectHostInfo() hostInfo {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	info := hostInfo{
		OS:               runtime.GOOS,
		Arch:             runtime.GOARCH,
		PID:              int(osthread.CurrentProcessID()),
		Thread:           osthread.CurrentSystemwideThreadID().String(),
		ClockSource:      osthread.ActiveClockSource().String(),
		Count:            osthread.CurrentHighResCount().String(),
		TickNanoseconds:  osthread.SystemTickNanoseconds(),
		TickMicroseconds: osthread.SystemTickMicroseconds(),
		TickCounts:       osthread.SystemTickInHighResCounts().String(),
		Cores:            osthread.NumCores(),
		SchedulerCPUs:    sysinfo.NumCPU(),
	}
	if created := osthread.ProcessCreationTime(); created > 0 {
		sec, frac := math.Modf(created)
		info.StartedAt = time.Unix(int64(sec), int64(frac*1e9))
	}
	return info
}

func runInfo(ctx context.Context, opts *cliOptions) error {
	info := collectHostInfo()
	log.G(ctx).WithField("clock", info.ClockSource).Debug("collected host info")

	if opts.conf.Format == config.FormatJSON {
		return writeJSON(opts.out, info)
	}

	w := tabwriter.NewWriter(opts.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "OS/Arch:\t%s/%s\n", info.OS, info.Arch)
	fmt.Fprintf(w, "PID:\t%d\n", info.PID)
	fmt.Fprintf(w, "Thread:\t%s\n", info.Thread)
	fmt.Fprintf(w, "Clock source:\t%s\n", info.ClockSource)
	fmt.Fprintf(w, "Current count:\t%s\n", info.Count)
	fmt.Fprintf(w, "System tick:\t%dns (%dus)\n", info.TickNanoseconds, info.TickMicroseconds)
	fmt.Fprintf(w, "System tick in counts:\t%s\n", info.TickCounts)
	fmt.Fprintf(w, "Cores:\t%d\n", info.Cores)
	fmt.Fprintf(w, "Scheduler CPUs:\t%d\n", info.SchedulerCPUs)
	if !info.StartedAt.IsZero() {
		fmt.Fprintf(w, "Started:\t%s ago\n", units.HumanDuration(time.Since(info.StartedAt)))
	}
	return w.Flush()
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
