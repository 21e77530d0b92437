package dispatch

import (
	"context"
	"fmt"
	"time"

	"go.heftrun.dev/heft/internal/core/domain"
)

// workerOutcome is what a worker pushes to the dispatcher once it has run
// every one of its work items in order.
type workerOutcome struct {
	worker  int
	results map[domain.TaskID]domain.Result
	costs   map[domain.TaskID]costTuple
	err     error
}

// costTuple is the measured compute and communication time for one task,
// attached to the result when Options.Costs is set.
type costTuple struct {
	ComputeMS float64
	CommMS    float64
}

// runWorker executes every work item assigned to a worker, strictly
// sequentially and in placement order, per the state machine Pending ->
// WaitingForDep(i) -> Ready -> Running -> Done(value|Err). It never returns
// early on a task failure: a failed or dependency-starved task still
// produces a Result (an Err), and the worker moves on to its next item.
func runWorker(ctx context.Context, items []*workItem, readTimeout time.Duration, costs bool) workerOutcome {
	local := make(map[domain.TaskID]domain.Result, len(items))
	tuples := make(map[domain.TaskID]costTuple, len(items))

	for _, wi := range items {
		res, tuple := runOne(ctx, wi, local, readTimeout)
		local[wi.id] = res
		if costs {
			tuples[wi.id] = tuple
		}

		msg := message{result: res}
		for _, e := range wi.outbound {
			e.ch <- msg
		}
	}

	return workerOutcome{results: local, costs: tuples}
}

// runOne materializes wi's argument tree (resolving every Dependency marker
// either from local or over its dedicated channel), invokes the task's
// function unless a dependency failed, and returns the resulting Result plus
// its measured cost tuple.
func runOne(ctx context.Context, wi *workItem, local map[domain.TaskID]domain.Result, readTimeout time.Duration) (domain.Result, costTuple) {
	var tuple costTuple
	var depFailed bool
	var selfTimedOut bool
	idx := 0

	resolved, err := wi.task.Args.Resolve(func(dep domain.Dependency) (any, error) {
		e := wi.remotes[idx]
		idx++

		var producerResult domain.Result
		if e == nil {
			producerResult = local[dep.Producer]
		} else {
			start := time.Now()
			res, timedOut := receive(ctx, e.ch, readTimeout)
			tuple.CommMS += float64(time.Since(start).Milliseconds())
			if timedOut {
				selfTimedOut = true
				return nil, domain.ErrTaskTimeout
			}
			producerResult = res
		}

		if !producerResult.Ok() {
			depFailed = true
			return nil, producerResult.Err
		}
		return dep.ExtractKey.Apply(producerResult.Value)
	})

	// A timed-out read is this task's own failure, not an inherited one: it
	// gets task_timeout directly, and only its own dependents see
	// dependency_error.
	if selfTimedOut {
		return domain.ErrResult(domain.Timeout(domain.ErrTaskTimeout)), tuple
	}
	if depFailed {
		return domain.ErrResult(domain.DependencyError()), tuple
	}
	if err != nil {
		return domain.ErrResult(domain.TaskFailure(err)), tuple
	}

	start := time.Now()
	value, err := invoke(ctx, wi.task, resolved)
	tuple.ComputeMS = float64(time.Since(start).Milliseconds())
	if err != nil {
		return domain.ErrResult(domain.TaskFailure(err)), tuple
	}
	return domain.OkResult(value), tuple
}

// invoke calls the task's function, recovering a panic into an error so a
// misbehaving user function never brings down the whole worker.
func invoke(ctx context.Context, task domain.Task, args domain.ArgSpec) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError{r}
		}
	}()
	return task.Fn(ctx, args)
}

type panicError struct{ v any }

func (p panicError) Error() string { return fmt.Sprintf("task panicked: %v", p.v) }

// receive blocks on ch, bounded by timeout when timeout is positive and by
// ctx cancellation always. It reports timedOut=true if the deadline elapsed
// before a message arrived.
func receive(ctx context.Context, ch <-chan message, timeout time.Duration) (domain.Result, bool) {
	if timeout <= 0 {
		select {
		case msg := <-ch:
			return msg.result, false
		case <-ctx.Done():
			return domain.Result{}, true
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case msg := <-ch:
		return msg.result, false
	case <-timer.C:
		return domain.Result{}, true
	case <-ctx.Done():
		return domain.Result{}, true
	}
}
