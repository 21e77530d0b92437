// Package compose provides structural graph-rewriting utilities that let
// independent task graphs be built and scheduled separately, then combined:
// prefix gives every task in a graph a fresh, collision-free structured
// identity, and merge unions prefixed graphs into one.
package compose

import "go.heftrun.dev/heft/internal/core/domain"

// Prefix returns a new graph in which every task ID k is replaced by the
// structured ID (token, k), with every Dependency reference rewritten to
// match. It is injective on IDs: two distinct source graphs prefixed with
// distinct tokens never collide, which is what lets callers merge them
// afterward with a plain key union.
func Prefix(g *domain.Graph, token any) (*domain.Graph, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	out := domain.NewGraph()
	prefixToken := domain.NewID(token)

	rewire := func(id domain.TaskID) domain.TaskID {
		return domain.NewStructuredID(prefixToken, id)
	}

	for id, task := range g.Walk() {
		rewritten, err := rewriteDeps(task.Args, rewire)
		if err != nil {
			return nil, err
		}
		if err := out.AddTask(rewire(id), domain.Task{Fn: task.Fn, FnID: task.FnID, Args: rewritten, Cost: task.Cost}); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Merge unions any number of graphs whose key sets are already disjoint
// (the expected case after Prefix) into a single graph. It returns
// domain.ErrTaskAlreadyExists if two inputs share a task ID.
func Merge(graphs ...*domain.Graph) (*domain.Graph, error) {
	out := domain.NewGraph()
	for _, g := range graphs {
		if err := g.Validate(); err != nil {
			return nil, err
		}
		for id, task := range g.Walk() {
			if err := out.AddTask(id, task); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func rewriteDeps(spec domain.ArgSpec, rewire func(domain.TaskID) domain.TaskID) (domain.ArgSpec, error) {
	rewrite := func(v any) any {
		dep, ok := v.(domain.Dependency)
		if !ok {
			return v
		}
		return domain.Dep(rewire(dep.Producer), dep.ExtractKey, dep.CommCost)
	}

	switch spec.Kind {
	case domain.ArgSingle:
		return domain.Single(rewrite(spec.Value)), nil
	case domain.ArgSequence:
		out := make([]any, len(spec.Seq))
		for i, v := range spec.Seq {
			out[i] = rewrite(v)
		}
		return domain.Sequence(out...), nil
	case domain.ArgKeyed:
		out := make(map[string]any, len(spec.Keyed))
		for k, v := range spec.Keyed {
			out[k] = rewrite(v)
		}
		return domain.Keyed(out), nil
	default:
		return domain.ArgSpec{}, domain.ErrMalformedArgSpec
	}
}
