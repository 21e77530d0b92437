package compose_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.heftrun.dev/heft/internal/core/domain"
	"go.heftrun.dev/heft/internal/engine/compose"
)

func noop(context.Context, domain.ArgSpec) (any, error) { return nil, nil }

func buildPair(t *testing.T) *domain.Graph {
	t.Helper()
	g := domain.NewGraph()
	a := domain.NewID("a")
	b := domain.NewID("b")
	require.NoError(t, g.AddTask(a, domain.Task{Fn: noop, Args: domain.Single(1), Cost: 1}))
	require.NoError(t, g.AddTask(b, domain.Task{Fn: noop, Args: domain.Single(domain.Dep(a, domain.NoKey, 1)), Cost: 1}))
	return g
}

func TestPrefix_RewritesIDsAndDependencies(t *testing.T) {
	g := buildPair(t)
	out, err := compose.Prefix(g, "left")
	require.NoError(t, err)
	require.NoError(t, out.Validate())
	require.Equal(t, 2, out.TaskCount())

	a := domain.NewStructuredID(domain.NewID("left"), domain.NewID("a"))
	b := domain.NewStructuredID(domain.NewID("left"), domain.NewID("b"))

	bTask, ok := out.GetTask(b)
	require.True(t, ok)
	deps := bTask.Args.Dependencies()
	require.Len(t, deps, 1)
	require.Equal(t, a, deps[0].Producer)
}

func TestPrefix_DistinctTokensAreCollisionFree(t *testing.T) {
	left, err := compose.Prefix(buildPair(t), "left")
	require.NoError(t, err)
	right, err := compose.Prefix(buildPair(t), "right")
	require.NoError(t, err)

	merged, err := compose.Merge(left, right)
	require.NoError(t, err)
	require.NoError(t, merged.Validate())
	require.Equal(t, 4, merged.TaskCount())
}

func TestMerge_CollidingKeysError(t *testing.T) {
	g1 := buildPair(t)
	g2 := buildPair(t)
	_, err := compose.Merge(g1, g2)
	require.ErrorIs(t, err, domain.ErrTaskAlreadyExists)
}
