// Package metrics exposes host timing and identity information through the
// docker/go-metrics registry.
package metrics

import (
	"time"

	"github.com/docker/go-metrics"

	"github.com/moby/osthread/pkg/osthread"
)

var (
	hostInfo      metrics.LabeledGauge
	tickNanos     metrics.Gauge
	cores         metrics.Gauge
	startTime     metrics.Gauge
	sleepDuration metrics.LabeledTimer
)

func init() {
	ns := metrics.NewNamespace("osthread", "", nil)
	hostInfo = ns.NewLabeledGauge("host", "The clock source compiled into the process", metrics.Unit("info"), "clock_source")
	tickNanos = ns.NewGauge("system_tick", "The scheduler tick resolution", metrics.Nanoseconds)
	cores = ns.NewGauge("cores", "The number of online logical processors", metrics.Unit("cores"))
	startTime = ns.NewGauge("process_start_time", "The process creation time since the Unix epoch", metrics.Seconds)
	sleepDuration = ns.NewLabeledTimer("sleep", "The measured duration of sleeps requested through osthread", "kind")
	metrics.Register(ns)
}

// RecordHost publishes the values that are fixed for the life of the
// process.
func RecordHost() {
	hostInfo.WithValues(osthread.ActiveClockSource().String()).Set(1)
	tickNanos.Set(float64(osthread.SystemTickNanoseconds()))
	cores.Set(float64(osthread.NumCores()))
	startTime.Set(osthread.ProcessCreationTime())
}

// ObserveSleep records a measured sleep; kind is "sleep" or "tick".
func ObserveSleep(kind string, d time.Duration) {
	sleepDuration.WithValues(kind).Update(d)
}
