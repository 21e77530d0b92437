package cost_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.heftrun.dev/heft/internal/core/domain"
	"go.heftrun.dev/heft/internal/engine/cost"
)

func noop(context.Context, domain.ArgSpec) (any, error) { return nil, nil }

// TestRank_LinearChain checks rank accumulates compute + comm cost back from
// the sink: C -> B -> A (A depends on B, B depends on C), so A is the sink
// and C has the highest rank.
func TestRank_LinearChain(t *testing.T) {
	g := domain.NewGraph()
	c := domain.NewID("c")
	b := domain.NewID("b")
	a := domain.NewID("a")

	require.NoError(t, g.AddTask(c, domain.Task{Fn: noop, Args: domain.Single(0), Cost: 5}))
	require.NoError(t, g.AddTask(b, domain.Task{Fn: noop, Args: domain.Single(domain.Dep(c, domain.NoKey, 2)), Cost: 3}))
	require.NoError(t, g.AddTask(a, domain.Task{Fn: noop, Args: domain.Single(domain.Dep(b, domain.NoKey, 1)), Cost: 4}))
	require.NoError(t, g.Validate())

	ranks := cost.Rank(g)
	require.Equal(t, 4.0, ranks[a])
	require.Equal(t, 3.0+1+4, ranks[b])
	require.Equal(t, 5.0+2+(3+1+4), ranks[c])
}

func TestCommCost_ZeroOnSameWorker(t *testing.T) {
	require.Equal(t, 0.0, cost.CommCost(42, 1, 1))
	require.Equal(t, 42.0, cost.CommCost(42, 1, 2))
}
