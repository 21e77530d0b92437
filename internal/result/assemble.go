// Package result merges a dispatcher outcome back into the shape a caller
// of execute() actually wants: results rewritten through a
// remove_duplicates alias map, optionally filtered to an output_tasks set,
// optionally carrying a parallel costs submap, and optionally inflated from
// flat structured-ID keys into a nested mapping.
package result

import (
	"go.heftrun.dev/heft/internal/core/domain"
	"go.heftrun.dev/heft/internal/dispatch"
)

// Options configures Assemble.
type Options struct {
	// OutputTasks restricts which original task IDs are returned. A nil or
	// empty set means every task's result is returned.
	OutputTasks map[domain.TaskID]struct{}
	// Costs, when true, populates Assembled.Costs.
	Costs bool
}

// Assembled is the merged, filtered view of a dispatcher Outcome, still
// keyed by TaskID so that Inflate can later recognize structured keys.
type Assembled struct {
	Tasks map[domain.TaskID]domain.Result
	Costs map[domain.TaskID]dispatch.CostTuple // nil unless Options.Costs was set
}

// Assemble merges outcome's per-survivor results into a map keyed by every
// original task ID named in sigma: result(k) = result(sigma(k)). It
// implements dispatcher-loop steps 3-5 (merge, output_tasks filter, costs
// submap) as a standalone step so internal/dispatch stays a pure execution
// engine.
func Assemble(outcome dispatch.Outcome, sigma map[domain.TaskID]domain.TaskID, opts Options) Assembled {
	out := Assembled{Tasks: make(map[domain.TaskID]domain.Result, len(sigma))}
	if opts.Costs {
		out.Costs = make(map[domain.TaskID]dispatch.CostTuple, len(sigma))
	}

	for original, survivor := range sigma {
		if !keep(opts.OutputTasks, original) {
			continue
		}
		out.Tasks[original] = outcome.Results[survivor]
		if opts.Costs {
			out.Costs[original] = outcome.Costs[survivor]
		}
	}

	return out
}

func keep(outputTasks map[domain.TaskID]struct{}, id domain.TaskID) bool {
	if len(outputTasks) == 0 {
		return true
	}
	_, ok := outputTasks[id]
	return ok
}
