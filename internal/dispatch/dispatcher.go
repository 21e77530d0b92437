package dispatch

import (
	"context"

	"go.heftrun.dev/heft/internal/core/domain"
	"go.heftrun.dev/heft/internal/engine/scheduler"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Dispatcher runs a HEFT plan to completion: it spawns one goroutine per
// scheduled worker, wires cross-worker dependency channels, and merges the
// per-worker result maps once every worker has finished. If the collection
// deadline elapses first, Execute returns a task-timeout error instead.
type Dispatcher struct{}

// NewDispatcher builds a Dispatcher. It carries no state of its own — every
// Execute call is independent.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Outcome is the raw product of running a plan: every task's Result keyed
// by its own (already-deduplicated) TaskID, and, when costs were requested,
// each task's measured compute/communication time. Rewriting these keys
// back through a remove_duplicates alias map, applying an output_tasks
// filter, and inflating structured keys are the responsibility of the
// internal/result package, not the dispatcher.
type Outcome struct {
	Results map[domain.TaskID]domain.Result
	Costs   map[domain.TaskID]CostTuple
}

// CostTuple is the measured compute and communication time for one task.
type CostTuple struct {
	ComputeMS float64
	CommMS    float64
}

// Execute runs plan against g, the graph it was computed from.
func (d *Dispatcher) Execute(ctx context.Context, plan *scheduler.Plan, g *domain.Graph, opts Options) (Outcome, error) {
	placement := make(map[domain.TaskID]int, len(plan.Placements))
	for id, pl := range plan.Placements {
		placement[id] = pl.Worker
	}

	items := buildWorkItems(g, placement, plan.ByWorker)

	ctx, cancel := context.WithTimeout(ctx, opts.collectionDeadline())
	defer cancel()

	outcomes := make([]workerOutcome, len(items))
	grp, gctx := errgroup.WithContext(ctx)
	for w := range items {
		w := w
		grp.Go(func() error {
			outcomes[w] = runWorker(gctx, items[w], opts.PerReadTimeout, opts.Costs)
			return outcomes[w].err
		})
	}

	done := make(chan error, 1)
	go func() { done <- grp.Wait() }()
	select {
	case err := <-done:
		if err != nil {
			return Outcome{}, zerr.Wrap(err, domain.ErrTaskTimeout.Error())
		}
	case <-ctx.Done():
		// Workers observe cancellation through gctx; one still inside a task
		// function is left to finish in the background and its results are
		// discarded.
		return Outcome{}, zerr.With(zerr.Wrap(ctx.Err(), domain.ErrTaskTimeout.Error()), "phase", "collection")
	}
	if ctx.Err() != nil {
		return Outcome{}, zerr.With(zerr.Wrap(ctx.Err(), domain.ErrTaskTimeout.Error()), "phase", "collection")
	}

	out := Outcome{
		Results: make(map[domain.TaskID]domain.Result, g.TaskCount()),
		Costs:   make(map[domain.TaskID]CostTuple, g.TaskCount()),
	}
	for _, oc := range outcomes {
		for id, res := range oc.results {
			out.Results[id] = res
		}
		for id, t := range oc.costs {
			out.Costs[id] = CostTuple{ComputeMS: t.ComputeMS, CommMS: t.CommMS}
		}
	}

	return out, nil
}
