// Package app wires the engine and dispatcher into the operations the CLI
// exposes: schedule+execute a demo graph end to end (remove_duplicates runs
// as part of that pipeline), or render one with to_dot. Prefix is not used
// here; it is a library call in internal/engine/compose.
package app

import (
	"context"
	"time"

	"go.heftrun.dev/heft/internal/core/domain"
	"go.heftrun.dev/heft/internal/core/ports"
	"go.heftrun.dev/heft/internal/dispatch"
	"go.heftrun.dev/heft/internal/engine/dedup"
	"go.heftrun.dev/heft/internal/engine/dot"
	"go.heftrun.dev/heft/internal/engine/scheduler"
	"go.heftrun.dev/heft/internal/result"
	"go.trai.ch/zerr"
)

// App ties the configuration loader, scheduler, dispatcher, and result
// assembler together into the operations a caller (here, cmd/heft) drives.
type App struct {
	configLoader ports.ConfigLoader
	dispatcher   *dispatch.Dispatcher
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New builds an App from its adapters.
func New(loader ports.ConfigLoader, disp *dispatch.Dispatcher, telemetry ports.Telemetry, logger ports.Logger) *App {
	return &App{
		configLoader: loader,
		dispatcher:   disp,
		telemetry:    telemetry,
		logger:       logger,
	}
}

// RunOptions configures one end-to-end schedule+execute cycle.
type RunOptions struct {
	// ConfigPath selects the engine options file; "" uses the built-in
	// defaults (worker_count=1, no per-read timeout, the 60s default
	// collection timeout, costs/inflate off).
	ConfigPath string
	// OutputTasks restricts the returned result keys; every task is still
	// executed if another task depends on it. Empty means return everything.
	OutputTasks []string
}

// RunResult is the caller-facing outcome of Run: a string-keyed view of
// every (or every requested) task's result, optionally nested if inflation
// was requested, and an optional parallel costs view.
type RunResult struct {
	Tasks map[string]any
	Costs map[string]dispatch.CostTuple
}

// Run executes the named built-in scenario end to end: remove_duplicates,
// schedule, execute, then assemble (and optionally inflate) the result.
func (a *App) Run(ctx context.Context, scenario string, opts RunOptions) (RunResult, error) {
	graph, err := BuildScenario(scenario)
	if err != nil {
		return RunResult{}, err
	}

	engineOpts, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return RunResult{}, zerr.Wrap(err, "failed to load configuration")
	}

	dedupGraph, sigma, err := dedup.Eliminate(graph)
	if err != nil {
		return RunResult{}, zerr.Wrap(err, "failed to remove duplicates")
	}

	sched, err := scheduler.NewScheduler(engineOpts.WorkerCount)
	if err != nil {
		return RunResult{}, err
	}

	plan, err := sched.Schedule(dedupGraph)
	if err != nil {
		return RunResult{}, zerr.Wrap(err, "failed to schedule graph")
	}

	vertex := a.telemetry.Record(ctx, scenario)
	outcome, err := a.dispatcher.Execute(ctx, plan, dedupGraph, dispatch.Options{
		PerReadTimeout:    time.Duration(engineOpts.PerReadTimeoutMS) * time.Millisecond,
		CollectionTimeout: time.Duration(engineOpts.CollectionTimeout) * time.Millisecond,
		Costs:             engineOpts.Costs,
	})
	vertex.Complete(err)
	if err != nil {
		a.logger.Error(err)
		return RunResult{}, zerr.Wrap(err, "execution failed")
	}

	assembled := result.Assemble(outcome, sigma, result.Options{
		OutputTasks: outputTaskSet(opts.OutputTasks),
		Costs:       engineOpts.Costs,
	})

	var tasks map[string]any
	if engineOpts.Inflate {
		inflated := result.Inflate(assembled.Tasks)
		tasks = inflated
	} else {
		tasks = make(map[string]any, len(assembled.Tasks))
		for id, res := range assembled.Tasks {
			tasks[id.String()] = res
		}
	}

	rr := RunResult{Tasks: tasks}
	if engineOpts.Costs {
		rr.Costs = make(map[string]dispatch.CostTuple, len(assembled.Costs))
		for id, c := range assembled.Costs {
			rr.Costs[id.String()] = c
		}
	}
	return rr, nil
}

// ToDot renders the named built-in scenario as Graphviz DOT text.
func (a *App) ToDot(scenario string) (string, error) {
	graph, err := BuildScenario(scenario)
	if err != nil {
		return "", err
	}
	return dot.Render(graph)
}

// Close flushes the telemetry recording session. The caller should invoke
// this once, on shutdown.
func (a *App) Close() error {
	return a.telemetry.Close()
}

func outputTaskSet(names []string) map[domain.TaskID]struct{} {
	if len(names) == 0 {
		return nil
	}
	set := make(map[domain.TaskID]struct{}, len(names))
	for _, n := range names {
		set[domain.NewID(n)] = struct{}{}
	}
	return set
}
