// Package cost implements the HEFT upward-rank priority metric and the
// inter-worker communication cost model.
package cost

import "go.heftrun.dev/heft/internal/core/domain"

// Rank computes the HEFT upward rank of every task in g: rank(t) =
// compute-cost(t) + max over outgoing edges (comm-cost(e) + rank(successor)),
// with rank(leaf) = compute-cost(leaf). g must already be validated (Walk
// must be usable).
func Rank(g *domain.Graph) map[domain.TaskID]float64 {
	ranks := make(map[domain.TaskID]float64, g.TaskCount())

	// successors and their incurred communication cost, derived from the
	// reverse of each task's own Dependency markers.
	succCost := make(map[domain.TaskID][]edge, g.TaskCount())
	for id, task := range g.Walk() {
		for _, dep := range task.Args.Dependencies() {
			succCost[dep.Producer] = append(succCost[dep.Producer], edge{to: id, commCost: dep.CommCost})
		}
	}

	order := allIDs(g)
	// Process in reverse topological order so every successor's rank is
	// already known (ranks flow from leaves/sinks back toward sources).
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		task, _ := g.GetTask(id)
		best := 0.0
		for _, e := range succCost[id] {
			if v := e.commCost + ranks[e.to]; v > best {
				best = v
			}
		}
		ranks[id] = task.Cost + best
	}

	return ranks
}

type edge struct {
	to       domain.TaskID
	commCost float64
}

func allIDs(g *domain.Graph) []domain.TaskID {
	ids := make([]domain.TaskID, 0, g.TaskCount())
	for id := range g.Walk() {
		ids = append(ids, id)
	}
	return ids
}
