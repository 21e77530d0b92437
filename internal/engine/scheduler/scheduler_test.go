package scheduler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.heftrun.dev/heft/internal/core/domain"
	"go.heftrun.dev/heft/internal/engine/scheduler"
)

func noop(context.Context, domain.ArgSpec) (any, error) { return nil, nil }

func TestNewScheduler_RejectsZeroWorkers(t *testing.T) {
	_, err := scheduler.NewScheduler(0)
	require.ErrorIs(t, err, scheduler.ErrInvalidWorkerCount)
}

// TestSchedule_IndependentTasksFanOut checks that N independent tasks over
// W workers distribute roughly evenly and every placement lands in [0, W).
func TestSchedule_IndependentTasksFanOut(t *testing.T) {
	g := domain.NewGraph()
	for i := 0; i < 4; i++ {
		id := domain.NewID(i)
		require.NoError(t, g.AddTask(id, domain.Task{Fn: noop, Args: domain.Single(i), Cost: 1}))
	}

	sched, err := scheduler.NewScheduler(2)
	require.NoError(t, err)

	plan, err := sched.Schedule(g)
	require.NoError(t, err)
	require.Len(t, plan.Placements, 4)

	for w, ids := range plan.ByWorker {
		require.LessOrEqual(t, len(ids), 4)
		require.GreaterOrEqual(t, w, 0)
	}
	seen := map[int]int{}
	for _, pl := range plan.Placements {
		require.GreaterOrEqual(t, pl.Worker, 0)
		require.Less(t, pl.Worker, 2)
		seen[pl.Worker]++
	}
	require.Equal(t, 2, seen[0])
	require.Equal(t, 2, seen[1])
}

// TestSchedule_ChainRespectsDependencyOrder verifies that in a strict
// producer->consumer chain with nonzero comm cost over two workers, the
// consumer does not start before its producer finishes.
func TestSchedule_ChainRespectsDependencyOrder(t *testing.T) {
	g := domain.NewGraph()
	a := domain.NewID("a")
	b := domain.NewID("b")

	require.NoError(t, g.AddTask(a, domain.Task{Fn: noop, Args: domain.Single(1), Cost: 3}))
	require.NoError(t, g.AddTask(b, domain.Task{Fn: noop, Args: domain.Single(domain.Dep(a, domain.NoKey, 2)), Cost: 2}))

	sched, err := scheduler.NewScheduler(2)
	require.NoError(t, err)

	plan, err := sched.Schedule(g)
	require.NoError(t, err)

	pa, pb := plan.Placements[a], plan.Placements[b]
	require.LessOrEqual(t, pa.Finish, pb.Start)
}

// TestSchedule_InsertionFillsGap verifies HEFT's insertion-based placement:
// a short task with no dependencies can be slotted into a gap earlier on a
// worker's timeline rather than appended after a later-finishing task.
//
// long and busyB fill worker 0 over [0, 20); busyA fills worker 1 over
// [0, 10). dep waits for long's data, which reaches worker 1 at 10+2 = 12,
// so dep lands on worker 1 at [12, 13), leaving a gap at [10, 12). short
// (no dependencies) fits that gap and starts at 10 instead of 13.
func TestSchedule_InsertionFillsGap(t *testing.T) {
	g := domain.NewGraph()
	long := domain.NewID("long")
	busyA := domain.NewID("busyA")
	busyB := domain.NewID("busyB")
	dep := domain.NewID("dep")
	short := domain.NewID("short")

	require.NoError(t, g.AddTask(long, domain.Task{Fn: noop, Args: domain.Single(0), Cost: 10}))
	require.NoError(t, g.AddTask(busyA, domain.Task{Fn: noop, Args: domain.Single(1), Cost: 10}))
	require.NoError(t, g.AddTask(busyB, domain.Task{Fn: noop, Args: domain.Single(2), Cost: 10}))
	require.NoError(t, g.AddTask(dep, domain.Task{Fn: noop, Args: domain.Single(domain.Dep(long, domain.NoKey, 2)), Cost: 1}))
	require.NoError(t, g.AddTask(short, domain.Task{Fn: noop, Args: domain.Single(0), Cost: 1}))

	sched, err := scheduler.NewScheduler(2)
	require.NoError(t, err)

	plan, err := sched.Schedule(g)
	require.NoError(t, err)
	require.Equal(t, 20.0, plan.Makespan())
	require.Equal(t, 1, plan.Placements[short].Worker)
	require.Equal(t, 10.0, plan.Placements[short].Start)
}
