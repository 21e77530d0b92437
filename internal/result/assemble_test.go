package result_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.heftrun.dev/heft/internal/core/domain"
	"go.heftrun.dev/heft/internal/dispatch"
	"go.heftrun.dev/heft/internal/result"
)

func TestAssemble_RewritesThroughSigma(t *testing.T) {
	survivor := domain.NewID("survivor")
	eliminated := domain.NewID("eliminated")

	outcome := dispatch.Outcome{
		Results: map[domain.TaskID]domain.Result{survivor: domain.OkResult(7)},
		Costs:   map[domain.TaskID]dispatch.CostTuple{survivor: {ComputeMS: 2, CommMS: 1}},
	}
	sigma := map[domain.TaskID]domain.TaskID{survivor: survivor, eliminated: survivor}

	assembled := result.Assemble(outcome, sigma, result.Options{Costs: true})

	require.Equal(t, domain.OkResult(7), assembled.Tasks[survivor])
	require.Equal(t, domain.OkResult(7), assembled.Tasks[eliminated], "eliminated key must report the survivor's result")
	require.Equal(t, dispatch.CostTuple{ComputeMS: 2, CommMS: 1}, assembled.Costs[eliminated])
}

func TestAssemble_OutputTasksFilter(t *testing.T) {
	a := domain.NewID("a")
	b := domain.NewID("b")
	outcome := dispatch.Outcome{Results: map[domain.TaskID]domain.Result{a: domain.OkResult(1), b: domain.OkResult(2)}}
	sigma := map[domain.TaskID]domain.TaskID{a: a, b: b}

	assembled := result.Assemble(outcome, sigma, result.Options{OutputTasks: map[domain.TaskID]struct{}{a: {}}})

	require.Contains(t, assembled.Tasks, a)
	require.NotContains(t, assembled.Tasks, b)
}

func TestInflate_NestsStructuredIDsAndKeepsFlatKeys(t *testing.T) {
	left := domain.NewStructuredID(domain.NewID("left"), domain.NewID("x"))
	right := domain.NewStructuredID(domain.NewID("right"), domain.NewID("x"))
	flat := domain.NewID("standalone")

	tasks := map[domain.TaskID]domain.Result{
		left:  domain.OkResult(1),
		right: domain.OkResult(2),
		flat:  domain.OkResult(3),
	}

	nested := result.Inflate(tasks)

	require.Equal(t, domain.OkResult(3), nested["standalone"])

	leftLevel, ok := nested["left"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, domain.OkResult(1), leftLevel["x"])

	rightLevel, ok := nested["right"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, domain.OkResult(2), rightLevel["x"])
}
