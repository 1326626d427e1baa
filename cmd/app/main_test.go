package main

import (
	"context"
	"log/slog"
	"testing"

	"fooddelivery/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T, vars map[string]string) (*cmd.CompositionRoot, cmd.Config) {
	t.Helper()
	cfg, err := cmd.ConfigFromEnv(func(key string) string { return vars[key] })
	require.NoError(t, err)
	cfg.HTTPPort = "0"

	app, err := cmd.NewCompositionRoot(context.Background(), cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return app, cfg
}

func TestRun_StartupFailureReturnsSoConnectionsClose(t *testing.T) {
	app, cfg := newApp(t, map[string]string{"SWEEP_SCHEDULE": "not a schedule"})

	err := run(context.Background(), app, cfg, slog.New(slog.DiscardHandler))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "starting jobs")
	assert.NoError(t, app.Close())
}

func TestRun_StopsWhenContextIsCancelled(t *testing.T) {
	app, cfg := newApp(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := run(ctx, app, cfg, slog.New(slog.DiscardHandler))

	require.NoError(t, err)
	assert.NoError(t, app.Close())
}
