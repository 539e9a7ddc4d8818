// Package config holds the runtime configuration of the osthread-info
// command. Values come from defaults, an optional JSON file, and flags, in
// increasing order of precedence; a directive set both in the file and by a
// flag is an error.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"sort"
	"strings"

	"github.com/containerd/errdefs"
	"github.com/containerd/log"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// Output formats understood by the command.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Config is the configuration of the osthread-info command.
type Config struct {
	Debug          bool   `json:"debug,omitempty"`
	LogLevel       string `json:"log-level,omitempty"`
	LogFormat      string `json:"log-format,omitempty"`
	Pidfile        string `json:"pidfile,omitempty"`
	MetricsAddress string `json:"metrics-addr,omitempty"`
	Format         string `json:"format,omitempty"`
}

// New returns a Config with the defaults applied.
func New() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: string(log.TextFormat),
		Format:    FormatTable,
	}
}

// InstallFlags adds flags for the configurable options to flags, using the
// current values of conf as defaults.
func (conf *Config) InstallFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&conf.Debug, "debug", "D", conf.Debug, "Enable debug mode")
	flags.StringVarP(&conf.LogLevel, "log-level", "l", conf.LogLevel, `Set the logging level ("debug"|"info"|"warn"|"error"|"fatal")`)
	flags.StringVar(&conf.LogFormat, "log-format", conf.LogFormat, `Set the logging format ("text"|"json")`)
	flags.StringVarP(&conf.Pidfile, "pidfile", "p", conf.Pidfile, "Path to write the process PID to")
	flags.StringVar(&conf.MetricsAddress, "metrics-addr", conf.MetricsAddress, "Serve metrics on this address while running")
	flags.StringVar(&conf.Format, "format", conf.Format, `Output format ("table"|"json")`)
}

// Load merges the JSON configuration file at configFile into conf, which
// already holds the values from flags. A missing file is returned as an
// os.ErrNotExist error.
func Load(conf *Config, flags *pflag.FlagSet, configFile string) (*Config, error) {
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}
	// Strip a UTF-8 byte order mark left by some editors.
	b = bytes.TrimPrefix(b, []byte("\xef\xbb\xbf"))

	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, errors.Wrapf(errdefs.ErrInvalidArgument, "unable to parse %s: %v", configFile, err)
	}
	if err := findConfigurationConflicts(raw, flags); err != nil {
		return nil, err
	}

	merged := *conf
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&merged); err != nil {
		return nil, errors.Wrapf(errdefs.ErrInvalidArgument, "unable to parse %s: %v", configFile, err)
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// findConfigurationConflicts reports directives that are both in the file
// and explicitly set on the command line.
func findConfigurationConflicts(raw map[string]any, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	var conflicts []string
	flags.Visit(func(f *pflag.Flag) {
		if v, ok := raw[f.Name]; ok {
			conflicts = append(conflicts, fmt.Sprintf("%s: (from flag: %v, from file: %v)", f.Name, f.Value, v))
		}
	})
	if len(conflicts) == 0 {
		return nil
	}
	sort.Strings(conflicts)
	return errors.Wrapf(errdefs.ErrInvalidArgument, "the following directives are specified both as a flag and in the configuration file: %s", strings.Join(conflicts, ", "))
}

// Validate checks the values of conf.
func (conf *Config) Validate() error {
	if _, err := logrus.ParseLevel(conf.LogLevel); err != nil {
		return errors.Wrapf(errdefs.ErrInvalidArgument, "invalid log level %q", conf.LogLevel)
	}
	switch log.OutputFormat(conf.LogFormat) {
	case log.TextFormat, log.JSONFormat:
	default:
		return errors.Wrapf(errdefs.ErrInvalidArgument, "invalid log format %q", conf.LogFormat)
	}
	switch conf.Format {
	case FormatTable, FormatJSON:
	default:
		return errors.Wrapf(errdefs.ErrInvalidArgument, "invalid output format %q", conf.Format)
	}
	if conf.MetricsAddress != "" {
		if _, _, err := net.SplitHostPort(conf.MetricsAddress); err != nil {
			return errors.Wrapf(errdefs.ErrInvalidArgument, "invalid metrics address %q: %v", conf.MetricsAddress, err)
		}
	}
	return nil
}
