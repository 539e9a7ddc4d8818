package main

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"text/tabwriter"

	"github.com/containerd/errdefs"
	"github.com/containerd/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/moby/osthread/internal/config"
	"github.com/moby/osthread/pkg/osthread"
	"github.com/moby/osthread/pkg/spinwait"
)

// maxThreadCount keeps every locked sample thread, plus the threads the
// runtime already runs, below the default debug.SetMaxThreads limit of
// 10000, past which the process is killed.
const maxThreadCount = 8192

type threadSample struct {
	Index int    `json:"index"`
	ID    string `json:"id"`
	Tid   uint64 `json:"tid"`

	id osthread.SystemwideThreadID
}

func newThreadsCommand(cli *cliOptions) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "threads [OPTIONS]",
		Short: "Sample thread identifiers from concurrently running threads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThreads(cmd.Context(), cli, count)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "c", 4, "Number of threads to start")
	return cmd
}

// sampleThreads starts count goroutines, each locked to its own OS thread,
// and records their identifiers while all of them are still running.
func sampleThreads(ctx context.Context, count int) ([]threadSample, error) {
	samples := make([]threadSample, count)
	release := make(chan struct{})

	var started atomic.Int64
	eg, ctx := errgroup.WithContext(ctx)
	for i := range count {
		eg.Go(func() error {
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()

			id := osthread.CurrentSystemwideThreadID()
			samples[i] = threadSample{Index: i, ID: id.String(), Tid: uint64(id.TID), id: id}
			started.Add(1)

			select {
			case <-release:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	err := spinwait.Until(ctx, func() bool { return started.Load() == int64(count) })
	close(release)
	if werr := eg.Wait(); werr != nil {
		return nil, werr
	}
	if err != nil {
		return nil, err
	}
	return samples, nil
}

func checkDistinct(samples []threadSample) error {
	for i := range samples {
		for j := i + 1; j < len(samples); j++ {
			if osthread.EqualSystemwideThreadID(samples[i].id, samples[j].id) {
				return errors.Errorf("threads %d and %d report the same id %s", i, j, samples[i].ID)
			}
		}
	}
	return nil
}

func runThreads(ctx context.Context, cli *cliOptions, count int) error {
	if count < 1 || count > maxThreadCount {
		return errors.Wrapf(errdefs.ErrInvalidArgument, "invalid thread count: %d (must be between 1 and %d)", count, maxThreadCount)
	}

	samples, err := sampleThreads(ctx, count)
	if err != nil {
		return err
	}
	if err := checkDistinct(samples); err != nil {
		return err
	}
	log.G(ctx).WithField("threads", count).Debug("sampled distinct thread ids")

	if cli.conf.Format == config.FormatJSON {
		return writeJSON(cli.out, samples)
	}

	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tSYSTEMWIDE ID\tTHREAD ID")
	for _, s := range samples {
		fmt.Fprintf(w, "%d\t%s\t%d\n", s.Index, s.ID, s.Tid)
	}
	return w.Flush()
}
