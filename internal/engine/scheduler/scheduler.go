// Package scheduler implements HEFT (Heterogeneous Earliest Finish Time)
// list scheduling: it computes a static placement of every task onto one of
// a fixed number of workers, ordering tasks by descending upward rank and
// inserting each into the earliest available slot on the worker that
// minimizes its finish time.
package scheduler

import (
	"sort"

	"go.heftrun.dev/heft/internal/core/domain"
	"go.heftrun.dev/heft/internal/engine/cost"
	"go.trai.ch/zerr"
)

// Scheduler computes HEFT placements for a validated task graph across a
// fixed worker pool.
type Scheduler struct {
	workerCount int
}

// NewScheduler builds a Scheduler targeting the given number of workers.
// workerCount must be at least one.
func NewScheduler(workerCount int) (*Scheduler, error) {
	if workerCount < 1 {
		return nil, zerr.With(ErrInvalidWorkerCount, "worker_count", workerCount)
	}
	return &Scheduler{workerCount: workerCount}, nil
}

// interval is an occupied [start, finish) span on a worker's timeline.
type interval struct {
	start, finish float64
}

// Schedule produces a Plan for g. g must already satisfy domain.Graph.Validate
// (Walk must be usable); Schedule calls it again defensively since a caller
// may hand it a graph that was mutated since its last validation.
func (s *Scheduler) Schedule(g *domain.Graph) (*Plan, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	ranks := cost.Rank(g)
	order := priorityOrder(g, ranks)

	finish := make(map[domain.TaskID]float64, len(order))
	placement := make(map[domain.TaskID]int, len(order))
	timelines := make([][]interval, s.workerCount)

	plan := &Plan{
		Placements: make(map[domain.TaskID]Placement, len(order)),
		ByWorker:   make([][]domain.TaskID, s.workerCount),
	}

	for _, id := range order {
		task, _ := g.GetTask(id)
		deps := task.Args.Dependencies()

		bestWorker := 0
		bestStart, bestFinish := 0.0, -1.0

		for w := 0; w < s.workerCount; w++ {
			start := insertionSlot(timelines[w], est(deps, finish, placement, w), task.Cost)
			end := start + task.Cost

			if bestFinish < 0 || end < bestFinish {
				bestWorker, bestStart, bestFinish = w, start, end
			}
		}

		timelines[bestWorker] = insert(timelines[bestWorker], interval{start: bestStart, finish: bestFinish})
		finish[id] = bestFinish
		placement[id] = bestWorker

		plan.Placements[id] = Placement{Task: id, Worker: bestWorker, Start: bestStart, Finish: bestFinish}
		plan.ByWorker[bestWorker] = append(plan.ByWorker[bestWorker], id)
	}

	return plan, nil
}

// priorityOrder sorts tasks by descending rank, breaking ties by TaskID
// string form so the resulting order is deterministic across runs.
func priorityOrder(g *domain.Graph, ranks map[domain.TaskID]float64) []domain.TaskID {
	order := g.Keys()
	sort.Slice(order, func(i, j int) bool {
		ri, rj := ranks[order[i]], ranks[order[j]]
		if ri != rj {
			return ri > rj
		}
		return order[i].String() < order[j].String()
	})
	return order
}

// est computes the earliest start time for a task on worker w: the latest
// point at which every dependency's data is available to w, accounting for
// cross-worker communication cost on edges that cross a worker boundary.
func est(deps []domain.Dependency, finish map[domain.TaskID]float64, placement map[domain.TaskID]int, w int) float64 {
	var ready float64
	for _, d := range deps {
		avail := finish[d.Producer] + cost.CommCost(d.CommCost, placement[d.Producer], w)
		if avail > ready {
			ready = avail
		}
	}
	return ready
}

// insertionSlot finds the earliest time at or after est that a task of the
// given duration can be placed into timeline without overlapping an existing
// interval. timeline is assumed sorted by start time.
func insertionSlot(timeline []interval, est, duration float64) float64 {
	start := est
	for _, occupied := range timeline {
		if start+duration <= occupied.start {
			return start
		}
		if start < occupied.finish {
			start = occupied.finish
		}
	}
	return start
}

// insert returns timeline with iv inserted in sorted-by-start order.
func insert(timeline []interval, iv interval) []interval {
	i := sort.Search(len(timeline), func(i int) bool { return timeline[i].start > iv.start })
	timeline = append(timeline, interval{})
	copy(timeline[i+1:], timeline[i:])
	timeline[i] = iv
	return timeline
}
