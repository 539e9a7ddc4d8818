package main

import (
	"context"
	"fmt"
	"math"
	"text/tabwriter"
	"time"

	"github.com/containerd/errdefs"
	"github.com/containerd/log"
	units "github.com/docker/go-units"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/moby/osthread/internal/config"
	"github.com/moby/osthread/internal/metrics"
	"github.com/moby/osthread/pkg/osthread"
)

type measureOptions struct {
	sleep   time.Duration
	samples int
	tick    bool
}

type sleepSample struct {
	Requested time.Duration `json:"requested"`
	Elapsed   time.Duration `json:"elapsed"`
	Overshoot time.Duration `json:"overshoot"`
	Counts    string        `json:"counts"`
}

type sleepSummary struct {
	Total  time.Duration `json:"total"`
	Mean   time.Duration `json:"mean"`
	Median time.Duration `json:"median"`
	P95    time.Duration `json:"p95"`
	Max    time.Duration `json:"max"`
}

type measureReport struct {
	Samples []sleepSample `json:"samples"`
	Summary sleepSummary  `json:"summary"`
}

func newMeasureCommand(cli *cliOptions) *cobra.Command {
	var opts measureOptions

	cmd := &cobra.Command{
		Use:   "measure [OPTIONS]",
		Short: "Measure how long requested sleeps actually take",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeasure(cmd.Context(), cli, opts)
		},
	}

	flags := cmd.Flags()
	flags.DurationVar(&opts.sleep, "sleep", 50*time.Millisecond, "Duration of each sleep, in whole milliseconds")
	flags.IntVarP(&opts.samples, "samples", "n", 5, "Number of sleeps to measure")
	flags.BoolVar(&opts.tick, "tick", false, "Sleep for half a scheduler tick instead of --sleep")
	return cmd
}

func (opts measureOptions) validate() error {
	if opts.samples < 1 {
		return errors.Wrapf(errdefs.ErrInvalidArgument, "invalid number of samples: %d", opts.samples)
	}
	if !opts.tick && (opts.sleep < time.Millisecond || opts.sleep.Milliseconds() > math.MaxUint32) {
		return errors.Wrapf(errdefs.ErrInvalidArgument, "invalid sleep duration: %s", opts.sleep)
	}
	return nil
}

func (opts measureOptions) requested() time.Duration {
	if opts.tick {
		return time.Duration(osthread.SystemTickNanoseconds() / 2)
	}
	return opts.sleep.Truncate(time.Millisecond)
}

func measureSleep(opts measureOptions) sleepSample {
	requested := opts.requested()

	t0 := osthread.CurrentHighResCount()
	if opts.tick {
		osthread.SleepTick()
	} else {
		osthread.Sleep(uint32(requested.Milliseconds()))
	}
	t1 := osthread.CurrentHighResCount()

	counts := osthread.Subtract(t1, t0)
	elapsed := osthread.HighResCountDuration(counts)
	return sleepSample{
		Requested: requested,
		Elapsed:   elapsed,
		Overshoot: elapsed - requested,
		Counts:    counts.String(),
	}
}

func runMeasure(ctx context.Context, cli *cliOptions, opts measureOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}

	kind := "sleep"
	if opts.tick {
		kind = "tick"
	}

	samples := make([]sleepSample, 0, opts.samples)
	for i := 0; i < opts.samples; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s := measureSleep(opts)
		metrics.ObserveSleep(kind, s.Elapsed)
		log.G(ctx).WithFields(log.Fields{
			"sample":    i,
			"requested": s.Requested,
			"elapsed":   s.Elapsed,
		}).Debug("measured sleep")
		samples = append(samples, s)
	}

	summary, err := summarize(samples)
	if err != nil {
		return err
	}

	if cli.conf.Format == config.FormatJSON {
		return writeJSON(cli.out, measureReport{Samples: samples, Summary: summary})
	}

	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SAMPLE\tREQUESTED\tELAPSED\tOVERSHOOT\tCOUNTS")
	for i, s := range samples {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i, s.Requested, s.Elapsed, s.Overshoot, s.Counts)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cli.out, "\n%d sleeps took %s in total (mean %s, median %s, p95 %s, max %s)\n",
		len(samples), units.HumanDuration(summary.Total), summary.Mean, summary.Median, summary.P95, summary.Max)
	return err
}

// summarize reduces the elapsed times of samples, which must not be empty.
func summarize(samples []sleepSample) (sleepSummary, error) {
	data := make(stats.Float64Data, 0, len(samples))
	for _, s := range samples {
		data = append(data, float64(s.Elapsed))
	}

	var (
		sum   sleepSummary
		value float64
		err   error
	)
	for _, f := range []struct {
		dst *time.Duration
		fn  func() (float64, error)
	}{
		{&sum.Total, data.Sum},
		{&sum.Mean, data.Mean},
		{&sum.Median, data.Median},
		{&sum.P95, func() (float64, error) { return data.Percentile(95) }},
		{&sum.Max, data.Max},
	} {
		if value, err = f.fn(); err != nil {
			return sleepSummary{}, errors.Wrap(err, "summarize sleep samples")
		}
		*f.dst = time.Duration(value)
	}
	return sum, nil
}
