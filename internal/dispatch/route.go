package dispatch

import "go.heftrun.dev/heft/internal/core/domain"

// message is what travels over an inter-worker channel: a faithfully
// round-tripped successful value or Err sentinel.
type message struct {
	result domain.Result
}

// edge is a dedicated one-shot bounded channel wired for a single
// cross-worker dependency occurrence. It is single-producer/single-consumer:
// the producer's work item pushes exactly once after finishing, and the
// consumer's work item reads exactly once while materializing its
// argument tree.
type edge struct {
	dep domain.Dependency
	ch  chan message
}

// workItem is one scheduled task annotated with how each of its dependency
// occurrences must be resolved: same-worker dependencies are looked up in
// the owning worker's local result map, cross-worker dependencies are read
// from a dedicated edge channel (remotes[i] is nil when occurrence i is
// same-worker).
type workItem struct {
	id       domain.TaskID
	task     domain.Task
	worker   int
	remotes  []*edge
	outbound []*edge // edges this task must push its result into, once finished
}

// buildWorkItems wires every cross-worker dependency edge named by plan and
// returns each worker's ordered work-item list.
func buildWorkItems(g *domain.Graph, placement map[domain.TaskID]int, byWorker [][]domain.TaskID) [][]*workItem {
	items := make([][]*workItem, len(byWorker))
	byID := make(map[domain.TaskID]*workItem, g.TaskCount())

	for w, ids := range byWorker {
		items[w] = make([]*workItem, 0, len(ids))
		for _, id := range ids {
			task, _ := g.GetTask(id)
			deps := task.Args.Dependencies()
			remotes := make([]*edge, len(deps))

			for i, dep := range deps {
				if placement[dep.Producer] == w {
					continue
				}
				remotes[i] = &edge{dep: dep, ch: make(chan message, 1)}
			}

			wi := &workItem{id: id, task: task, worker: w, remotes: remotes}
			items[w] = append(items[w], wi)
			byID[id] = wi
		}
	}

	for w := range items {
		for _, wi := range items[w] {
			for _, e := range wi.remotes {
				if e == nil {
					continue
				}
				producer := byID[e.dep.Producer]
				producer.outbound = append(producer.outbound, e)
			}
		}
	}

	return items
}
