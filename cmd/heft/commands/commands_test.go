package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"go.heftrun.dev/heft/cmd/heft/commands"
	"go.heftrun.dev/heft/internal/adapters/config"
	"go.heftrun.dev/heft/internal/adapters/logger"
	"go.heftrun.dev/heft/internal/adapters/telemetry/progrock"
	"go.heftrun.dev/heft/internal/app"
	"go.heftrun.dev/heft/internal/dispatch"
)

func newTestCLI(t *testing.T) (*commands.CLI, *bytes.Buffer) {
	t.Helper()
	a := app.New(config.NewLoader(logger.New()), dispatch.NewDispatcher(), progrock.New(), logger.New())
	cli := commands.New(a)
	var buf bytes.Buffer
	cli.SetOut(&buf)
	return cli, &buf
}

func TestRun_Scenario(t *testing.T) {
	cli, buf := newTestCLI(t)
	cli.SetArgs([]string{"run", "sum-of-squares"})
	err := cli.Execute(context.Background())
	require.NoError(t, err)
	require.Contains(t, buf.String(), "sum")
}

func TestRun_OutputTasksFilter(t *testing.T) {
	cli, buf := newTestCLI(t)
	cli.SetArgs([]string{"run", "sum-of-squares", "--output-tasks", "sum"})
	err := cli.Execute(context.Background())
	require.NoError(t, err)
	require.Contains(t, buf.String(), "sum")
	require.NotContains(t, buf.String(), "s1")
}

func TestRun_UnknownScenario(t *testing.T) {
	cli, _ := newTestCLI(t)
	cli.SetArgs([]string{"run", "nope"})
	err := cli.Execute(context.Background())
	require.Error(t, err)
}

func TestDot_RendersScenario(t *testing.T) {
	cli, buf := newTestCLI(t)
	cli.SetArgs([]string{"dot", "arithmetic"})
	err := cli.Execute(context.Background())
	require.NoError(t, err)
	require.Contains(t, buf.String(), "digraph tasks")
}

func TestVersion(t *testing.T) {
	cli, buf := newTestCLI(t)
	cli.SetArgs([]string{"version"})
	err := cli.Execute(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, buf.String())
}

func TestRoot_Help(t *testing.T) {
	cli, _ := newTestCLI(t)
	cli.SetArgs([]string{"--help"})
	err := cli.Execute(context.Background())
	require.NoError(t, err)
}
