package config

import (
	"os"
	"testing"

	"github.com/containerd/errdefs"
	"github.com/spf13/pflag"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	"gotest.tools/v3/fs"
)

func newFlags(conf *Config) *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	conf.InstallFlags(flags)
	return flags
}

func TestNewDefaults(t *testing.T) {
	conf := New()
	assert.NilError(t, conf.Validate())
	assert.Check(t, is.Equal(conf.LogLevel, "info"))
	assert.Check(t, is.Equal(conf.LogFormat, "text"))
	assert.Check(t, is.Equal(conf.Format, FormatTable))
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(New(), nil, "/tmp/foo-bar-baz-osthread")
	assert.Check(t, os.IsNotExist(err), "got: %[1]T: %[1]v", err)
}

func TestLoadBrokenConfiguration(t *testing.T) {
	f := fs.NewFile(t, "config", fs.WithContent(`{"debug": tru`))
	defer f.Remove()

	_, err := Load(New(), nil, f.Path())
	assert.Check(t, is.ErrorContains(err, "unable to parse"))
	assert.Check(t, errdefs.IsInvalidArgument(err))
}

func TestLoadUnknownField(t *testing.T) {
	f := fs.NewFile(t, "config", fs.WithContent(`{"no-such-option": true}`))
	defer f.Remove()

	_, err := Load(New(), nil, f.Path())
	assert.Check(t, is.ErrorContains(err, "no-such-option"))
}

func TestLoadWithBOM(t *testing.T) {
	f := fs.NewFile(t, "config", fs.WithContent("\xef\xbb\xbf{\"debug\": true}"))
	defer f.Remove()

	conf, err := Load(New(), nil, f.Path())
	assert.NilError(t, err)
	assert.Check(t, conf.Debug)
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	f := fs.NewFile(t, "config", fs.WithContent(`{"format": "json", "log-level": "debug", "metrics-addr": "127.0.0.1:9323"}`))
	defer f.Remove()

	conf := New()
	flags := newFlags(conf)
	assert.NilError(t, flags.Parse([]string{"--pidfile", "/run/osthread.pid"}))

	loaded, err := Load(conf, flags, f.Path())
	assert.NilError(t, err)
	assert.Check(t, is.Equal(loaded.Format, FormatJSON))
	assert.Check(t, is.Equal(loaded.LogLevel, "debug"))
	assert.Check(t, is.Equal(loaded.MetricsAddress, "127.0.0.1:9323"))
	assert.Check(t, is.Equal(loaded.Pidfile, "/run/osthread.pid"))
	assert.Check(t, is.Equal(loaded.LogFormat, "text"))
}

func TestLoadConflicts(t *testing.T) {
	f := fs.NewFile(t, "config", fs.WithContent(`{"format": "json"}`))
	defer f.Remove()

	conf := New()
	flags := newFlags(conf)
	assert.NilError(t, flags.Parse([]string{"--format", "table"}))

	_, err := Load(conf, flags, f.Path())
	assert.Check(t, is.ErrorContains(err, "format: (from flag: table, from file: json)"))
	assert.Check(t, errdefs.IsInvalidArgument(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		doc         string
		modify      func(*Config)
		expectedErr string
	}{
		{doc: "defaults", modify: func(*Config) {}},
		{doc: "json logs", modify: func(c *Config) { c.LogFormat = "json" }},
		{doc: "bad log level", modify: func(c *Config) { c.LogLevel = "chatty" }, expectedErr: `invalid log level "chatty"`},
		{doc: "bad log format", modify: func(c *Config) { c.LogFormat = "xml" }, expectedErr: `invalid log format "xml"`},
		{doc: "bad output format", modify: func(c *Config) { c.Format = "yaml" }, expectedErr: `invalid output format "yaml"`},
		{doc: "metrics address", modify: func(c *Config) { c.MetricsAddress = ":9323" }},
		{doc: "bad metrics address", modify: func(c *Config) { c.MetricsAddress = "localhost" }, expectedErr: `invalid metrics address "localhost"`},
	}
	for _, tc := range tests {
		t.Run(tc.doc, func(t *testing.T) {
			conf := New()
			tc.modify(conf)
			err := conf.Validate()
			if tc.expectedErr == "" {
				assert.NilError(t, err)
				return
			}
			assert.Check(t, is.ErrorContains(err, tc.expectedErr))
			assert.Check(t, errdefs.IsInvalidArgument(err))
		})
	}
}
