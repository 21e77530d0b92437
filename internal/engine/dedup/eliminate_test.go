package dedup_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.heftrun.dev/heft/internal/core/domain"
	"go.heftrun.dev/heft/internal/engine/dedup"
)

func square(_ context.Context, args domain.ArgSpec) (any, error) {
	return args.Value.(int) * args.Value.(int), nil
}

func sum(_ context.Context, args domain.ArgSpec) (any, error) {
	return args.Seq[0].(int) + args.Seq[1].(int), nil
}

// TestEliminate_DuplicateSquare checks that two tasks with identical
// function identity and arguments collapse to one survivor, and a consumer
// that depended on the eliminated one is rewired to the survivor.
func TestEliminate_DuplicateSquare(t *testing.T) {
	g := domain.NewGraph()
	a := domain.NewID("a")
	b := domain.NewID("b")
	c := domain.NewID("c")

	require.NoError(t, g.AddTask(a, domain.Task{Fn: square, FnID: "square", Args: domain.Single(3), Cost: 1}))
	require.NoError(t, g.AddTask(b, domain.Task{Fn: square, FnID: "square", Args: domain.Single(3), Cost: 1}))
	require.NoError(t, g.AddTask(c, domain.Task{
		Fn:   sum,
		FnID: "sum",
		Args: domain.Sequence(domain.Dep(a, domain.NoKey, 1), domain.Dep(b, domain.NoKey, 1)),
		Cost: 1,
	}))

	out, sigma, err := dedup.Eliminate(g)
	require.NoError(t, err)

	require.Equal(t, 2, out.TaskCount(), "a and b should collapse to one survivor, c survives independently")
	require.Equal(t, sigma[a], sigma[b], "a and b must alias to the same survivor")

	survivorTask, ok := out.GetTask(sigma[a])
	require.True(t, ok)
	require.Equal(t, domain.ArgSingle, survivorTask.Args.Kind)

	cTask, ok := out.GetTask(c)
	require.True(t, ok)
	for _, dep := range cTask.Args.Dependencies() {
		require.Equal(t, sigma[a], dep.Producer, "c's dependencies must be rewritten to the survivor")
	}
}

// TestEliminate_DistinctArgsSurvive ensures tasks with the same function but
// different arguments are not merged.
func TestEliminate_DistinctArgsSurvive(t *testing.T) {
	g := domain.NewGraph()
	a := domain.NewID("a")
	b := domain.NewID("b")

	require.NoError(t, g.AddTask(a, domain.Task{Fn: square, FnID: "square", Args: domain.Single(3), Cost: 1}))
	require.NoError(t, g.AddTask(b, domain.Task{Fn: square, FnID: "square", Args: domain.Single(4), Cost: 1}))

	out, sigma, err := dedup.Eliminate(g)
	require.NoError(t, err)
	require.Equal(t, 2, out.TaskCount())
	require.NotEqual(t, sigma[a], sigma[b])
}

// TestEliminate_DistinctClosureIdentitySurvive verifies that two tasks with
// structurally identical arguments but distinct FnID (caller-asserted
// distinct closures) are never merged, per the "lambdas compare by identity
// only" edge case.
func TestEliminate_DistinctClosureIdentitySurvive(t *testing.T) {
	g := domain.NewGraph()
	a := domain.NewID("a")
	b := domain.NewID("b")

	require.NoError(t, g.AddTask(a, domain.Task{Fn: square, FnID: "closure-1", Args: domain.Single(3), Cost: 1}))
	require.NoError(t, g.AddTask(b, domain.Task{Fn: square, FnID: "closure-2", Args: domain.Single(3), Cost: 1}))

	out, sigma, err := dedup.Eliminate(g)
	require.NoError(t, err)
	require.Equal(t, 2, out.TaskCount())
	require.NotEqual(t, sigma[a], sigma[b])
}
