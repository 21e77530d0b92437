package dedup

import "go.heftrun.dev/heft/internal/core/domain"

// Eliminate computes G' (a subset of G's keys) and a surjective alias map
// sigma such that sigma(k) == k for every surviving key and sigma(k) ==
// sigma(k') for every eliminated key k whose canonical form equals that of
// the survivor k'. Ties among structurally-identical tasks are broken by
// first occurrence in the graph's topological order: when otherwise-
// identical tasks disagree on compute cost, the first-encountered estimate
// wins.
func Eliminate(g *domain.Graph) (*domain.Graph, map[domain.TaskID]domain.TaskID, error) {
	if err := g.Validate(); err != nil {
		return nil, nil, err
	}

	sigma := make(map[domain.TaskID]domain.TaskID, g.TaskCount())
	survivor := func(id domain.TaskID) domain.TaskID {
		if s, ok := sigma[id]; ok {
			return s
		}
		return id
	}

	canonToSurvivor := make(map[string]domain.TaskID, g.TaskCount())
	out := domain.NewGraph()

	for id, task := range g.Walk() {
		form := canonicalForm(task, survivor)

		if s, dup := canonToSurvivor[form]; dup {
			sigma[id] = s
			continue
		}

		canonToSurvivor[form] = id
		sigma[id] = id

		rewritten, err := rewriteDependencies(task.Args, survivor)
		if err != nil {
			return nil, nil, err
		}
		if err := out.AddTask(id, domain.Task{Fn: task.Fn, FnID: task.FnID, Args: rewritten, Cost: task.Cost}); err != nil {
			return nil, nil, err
		}
	}

	return out, sigma, nil
}

// rewriteDependencies returns a copy of spec with every Dependency marker's
// Producer rewritten through survivor, preserving shape and non-Dependency
// leaves unchanged.
func rewriteDependencies(spec domain.ArgSpec, survivor func(domain.TaskID) domain.TaskID) (domain.ArgSpec, error) {
	rewrite := func(v any) any {
		dep, ok := v.(domain.Dependency)
		if !ok {
			return v
		}
		return domain.Dep(survivor(dep.Producer), dep.ExtractKey, dep.CommCost)
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
