package domain

import (
	"iter"
	"math"
	"sort"

	"go.trai.ch/zerr"
)

// Graph is a mapping from TaskID to Task; edges are implicit, derived from
// the Dependency markers embedded in each task's ArgSpec.
type Graph struct {
	tasks      map[TaskID]Task
	order      []TaskID
	dependents map[TaskID][]TaskID
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{tasks: make(map[TaskID]Task)}
}

// AddTask adds a task under the given ID. It returns ErrTaskAlreadyExists if
// the ID is already present.
func (g *Graph) AddTask(id TaskID, t Task) error {
	if _, exists := g.tasks[id]; exists {
		return zerr.With(ErrTaskAlreadyExists, "task_id", id.String())
	}
	if err := t.Args.Validate(); err != nil {
		return zerr.With(err, "task_id", id.String())
	}
	if !finiteNonNegative(t.Cost) {
		return zerr.With(ErrNonFiniteCost, "task_id", id.String())
	}
	for _, d := range t.Args.Dependencies() {
		if !finiteNonNegative(d.CommCost) {
			return zerr.With(ErrNonFiniteCost, "task_id", id.String(), "dependency", d.Producer.String())
		}
	}
	g.tasks[id] = t
	return nil
}

// GetTask retrieves a task by ID.
func (g *Graph) GetTask(id TaskID) (Task, bool) {
	t, ok := g.tasks[id]
	return t, ok
}

// TaskCount returns the number of tasks in the graph.
func (g *Graph) TaskCount() int {
	return len(g.tasks)
}

// Keys returns every TaskID in the graph, sorted by string form for
// deterministic iteration.
func (g *Graph) Keys() []TaskID {
	keys := make([]TaskID, 0, len(g.tasks))
	for id := range g.tasks {
		keys = append(keys, id)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

// Validate checks that the graph has no cycles and no dangling dependency
// references, populating the topological execution order and the reverse
// dependents map on success. It must be called, and must succeed, before
// Walk or Dependents are used.
func (g *Graph) Validate() error {
	g.order = make([]TaskID, 0, len(g.tasks))
	g.dependents = g.buildDependents()

	const (
		unvisited = 0
		visiting  = 1
		visited   = 2
	)
	state := make(map[TaskID]int, len(g.tasks))
	var path []TaskID

	var visit func(id TaskID) error
	visit = func(id TaskID) error {
		state[id] = visiting
		path = append(path, id)

		task, ok := g.tasks[id]
		if !ok {
			return zerr.With(ErrMissingDependency, "dependency", id.String())
		}

		for _, dep := range task.Dependencies() {
			if _, exists := g.tasks[dep]; !exists {
				return zerr.With(ErrMissingDependency, "task", id.String(), "dependency", dep.String())
			}
			switch state[dep] {
			case visiting:
				return g.cycleError(path, dep)
			case unvisited:
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		state[id] = visited
		path = path[:len(path)-1]
		g.order = append(g.order, id)
		return nil
	}

	for _, id := range g.Keys() {
		if state[id] == unvisited {
			if err := visit(id); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Graph) buildDependents() map[TaskID][]TaskID {
	dependents := make(map[TaskID][]TaskID)
	for id := range g.tasks {
		task := g.tasks[id]
		for _, dep := range task.Dependencies() {
			dependents[dep] = append(dependents[dep], id)
		}
	}
	return dependents
}

func (g *Graph) cycleError(path []TaskID, dep TaskID) error {
	start := -1
	for i, id := range path {
		if id == dep {
			start = i
			break
		}
	}
	cycle := ""
	for i := start; i < len(path); i++ {
		cycle += path[i].String() + " -> "
	}
	cycle += dep.String()
	return zerr.With(ErrCycleDetected, "cycle", cycle)
}

// Walk returns an iterator yielding (TaskID, Task) pairs in topological
// order. Assumes Validate has already succeeded.
func (g *Graph) Walk() iter.Seq2[TaskID, Task] {
	return func(yield func(TaskID, Task) bool) {
		for _, id := range g.order {
			if !yield(id, g.tasks[id]) {
				return
			}
		}
	}
}

// Dependents returns the tasks that directly depend on the given task.
func (g *Graph) Dependents(id TaskID) []TaskID {
	return g.dependents[id]
}

func finiteNonNegative(f float64) bool {
	return f >= 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}
