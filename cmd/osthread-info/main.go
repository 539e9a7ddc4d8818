package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"

	"github.com/containerd/log"
	metrics "github.com/docker/go-metrics"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/moby/osthread/internal/config"
	osmetrics "github.com/moby/osthread/internal/metrics"
	"github.com/moby/osthread/pkg/pidfile"
)

type cliOptions struct {
	configFile string
	conf       *config.Config
	out        io.Writer
	cleanups   []func()
}

func newCLIOptions(out io.Writer) *cliOptions {
	return &cliOptions{
		conf: config.New(),
		out:  out,
	}
}

func newRootCommand(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "osthread-info [OPTIONS] [COMMAND]",
		Short:         "Report the process, thread and clock facilities of this host",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.Context(), opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config-file", "", "Configuration file")
	opts.conf.InstallFlags(flags)

	cmd.AddCommand(
		newMeasureCommand(opts),
		newThreadsCommand(opts),
	)
	return cmd
}

func (opts *cliOptions) setup(cmd *cobra.Command) error {
	if opts.configFile != "" {
		conf, err := config.Load(opts.conf, cmd.Flags(), opts.configFile)
		if err != nil {
			return err
		}
		opts.conf = conf
	} else if err := opts.conf.Validate(); err != nil {
		return err
	}

	if err := configureLogging(opts.conf); err != nil {
		return err
	}

	if opts.conf.Pidfile != "" {
		if err := pidfile.WriteCurrent(opts.conf.Pidfile); err != nil {
			return fmt.Errorf("failed to write pidfile: %w", err)
		}
		path := opts.conf.Pidfile
		opts.cleanups = append(opts.cleanups, func() {
			if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
				log.G(context.TODO()).WithError(err).Warn("failed to remove pidfile")
			}
		})
	}

	osmetrics.RecordHost()
	if opts.conf.MetricsAddress != "" {
		if err := opts.startMetricsServer(cmd.Context()); err != nil {
			return err
		}
	}
	return nil
}

// teardown releases what setup acquired, in reverse order.
func (opts *cliOptions) teardown() {
	for i := len(opts.cleanups) - 1; i >= 0; i-- {
		opts.cleanups[i]()
	}
	opts.cleanups = nil
}

func configureLogging(conf *config.Config) error {
	level := conf.LogLevel
	if conf.Debug {
		level = "debug"
	}
	if err := log.SetLevel(level); err != nil {
		return err
	}
	return log.SetFormat(log.OutputFormat(conf.LogFormat))
}

func (opts *cliOptions) startMetricsServer(ctx context.Context) error {
	l, err := net.Listen("tcp", opts.conf.MetricsAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on metrics address: %w", err)
	}
	srv := &http.Server{Handler: metrics.Handler()}
	go func() {
		log.G(ctx).WithField("address", l.Addr().String()).Info("serving metrics")
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.G(ctx).WithError(err).Error("metrics server stopped")
		}
	}()
	opts.cleanups = append(opts.cleanups, func() {
		_ = srv.Close()
	})
	return nil
}

func main() {
	logrus.SetOutput(os.Stderr)

	opts := newCLIOptions(os.Stdout)
	err := newRootCommand(opts).ExecuteContext(context.Background())
	opts.teardown()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
