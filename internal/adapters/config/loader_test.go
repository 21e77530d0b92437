package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.heftrun.dev/heft/internal/adapters/config"
	"go.heftrun.dev/heft/internal/adapters/logger"
)

func TestLoad_EmptyPathDefaults(t *testing.T) {
	l := config.NewLoader(logger.New())
	opts, err := l.Load("")
	require.NoError(t, err)
	require.Equal(t, config.DefaultWorkerCount, opts.WorkerCount)
}

func TestLoad_ParsesFile(t *testing.T) {
	content := `
worker_count: 4
per_read_timeout_ms: 500
collection_timeout_ms: 30000
costs: true
inflate: true
`
	path := filepath.Join(t.TempDir(), "heft.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	l := config.NewLoader(logger.New())
	opts, err := l.Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, opts.WorkerCount)
	require.EqualValues(t, 500, opts.PerReadTimeoutMS)
	require.EqualValues(t, 30000, opts.CollectionTimeout)
	require.True(t, opts.Costs)
	require.True(t, opts.Inflate)
}

func TestLoad_MissingWorkerCountDefaults(t *testing.T) {
	content := "costs: true\n"
	path := filepath.Join(t.TempDir(), "heft.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	l := config.NewLoader(logger.New())
	opts, err := l.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.DefaultWorkerCount, opts.WorkerCount)
}

func TestLoad_MissingFileErrors(t *testing.T) {
	l := config.NewLoader(logger.New())
	_, err := l.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, config.ErrConfigReadFailed)
}
