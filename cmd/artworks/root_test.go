package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/artworks/internal/config"
)

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "log-file", "log-level", "metrics-addr"} {
		require.NotNil(t, cmd.Flags().Lookup(name), "flag %s", name)
	}
	require.Error(t, cmd.Args(cmd, []string{"extra"}))
}

func TestApplyFlagsOnlyOverridesChanged(t *testing.T) {
	cfg := config.Config{
		Log:     config.LogConfig{Level: "info", File: "/from/config.log"},
		Metrics: config.MetricsConfig{Addr: ":9000"},
	}
	opts := options{logFile: "/flag.log", logLevel: "debug", metricsAddr: ""}
	changed := func(name string) bool { return name == "log-level" || name == "metrics-addr" }

	applyFlags(&cfg, opts, changed)
	require.Equal(t, "/from/config.log", cfg.Log.File)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Empty(t, cfg.Metrics.Addr)
}
