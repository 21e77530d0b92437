package app

import (
	"context"
	"errors"

	"go.heftrun.dev/heft/internal/core/domain"
)

// Scenario is one of the built-in demo graphs the CLI can run or render.
// Graph authoring is an external collaborator of this module; these
// scenarios stand in for it so `cmd/heft` has something concrete to
// schedule, execute, and visualize.
type Scenario struct {
	Name  string
	Graph *domain.Graph
}

// ScenarioNames lists every built-in scenario, in a fixed order suitable
// for CLI help text.
func ScenarioNames() []string {
	return []string{"arithmetic", "sum-of-squares", "dedup", "failure"}
}

// BuildScenario constructs the named demo graph.
func BuildScenario(name string) (*domain.Graph, error) {
	switch name {
	case "arithmetic":
		return buildArithmeticDAG()
	case "sum-of-squares":
		return buildSumOfSquares()
	case "dedup":
		return buildDedupDemo()
	case "failure":
		return buildFailureDemo()
	default:
		return nil, errors.New("unknown scenario: " + name)
	}
}

const (
	fnSquare    = "square"
	fnHalve     = "halve"
	fnAdd       = "add"
	fnMul       = "mul"
	fnSub       = "sub"
	fnIncrement = "increment"
	fnFail      = "fail"
)

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func square(_ context.Context, args domain.ArgSpec) (any, error) {
	x := toFloat(args.Value)
	return x * x, nil
}

func halve(_ context.Context, args domain.ArgSpec) (any, error) {
	return toFloat(args.Value) / 2, nil
}

func add(_ context.Context, args domain.ArgSpec) (any, error) {
	return toFloat(args.Seq[0]) + toFloat(args.Seq[1]), nil
}

func mul(_ context.Context, args domain.ArgSpec) (any, error) {
	return toFloat(args.Seq[0]) * toFloat(args.Seq[1]), nil
}

func sub(_ context.Context, args domain.ArgSpec) (any, error) {
	return toFloat(args.Seq[0]) - toFloat(args.Seq[1]), nil
}

func increment(_ context.Context, args domain.ArgSpec) (any, error) {
	return toFloat(args.Value) + 1, nil
}

func fail(_ context.Context, _ domain.ArgSpec) (any, error) {
	return nil, errors.New("task raised deliberately")
}

// buildArithmeticDAG is a six-task DAG mixing unary and binary arithmetic,
// expected result {0:9, 1:16, 2:5, 3:25, 4:45, 5:-20}.
func buildArithmeticDAG() (*domain.Graph, error) {
	g := domain.NewGraph()
	id := func(name string) domain.TaskID { return domain.NewID(name) }

	tasks := []struct {
		name string
		fn   domain.Func
		fnID string
		args domain.ArgSpec
		cost float64
	}{
		{"0", square, fnSquare, domain.Single(3.0), 10.8},
		{"1", square, fnSquare, domain.Single(4.0), 10.8},
		{"2", halve, fnHalve, domain.Single(10.0), 11},
		{"3", add, fnAdd, domain.Sequence(
			domain.Dep(id("0"), domain.NoKey, 1),
			domain.Dep(id("1"), domain.NoKey, 1),
		), 10.7},
		{"4", mul, fnMul, domain.Sequence(
			domain.Dep(id("0"), domain.NoKey, 1),
			domain.Dep(id("2"), domain.NoKey, 1),
		), 10.8},
		{"5", sub, fnSub, domain.Sequence(
			domain.Dep(id("3"), domain.NoKey, 1),
			domain.Dep(id("4"), domain.NoKey, 1),
		), 10.9},
	}

	for _, t := range tasks {
		if err := g.AddTask(id(t.name), domain.Task{Fn: t.fn, FnID: t.fnID, Args: t.args, Cost: t.cost}); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// buildSumOfSquares chains two squares into a sum: {s1:9, s2:64, sum:73}.
func buildSumOfSquares() (*domain.Graph, error) {
	g := domain.NewGraph()
	id := func(name string) domain.TaskID { return domain.NewID(name) }

	if err := g.AddTask(id("s1"), domain.Task{Fn: square, FnID: fnSquare, Args: domain.Single(3.0), Cost: 8}); err != nil {
		return nil, err
	}
	if err := g.AddTask(id("s2"), domain.Task{Fn: square, FnID: fnSquare, Args: domain.Single(8.0), Cost: 8}); err != nil {
		return nil, err
	}
	sumArgs := domain.Sequence(
		domain.Dep(id("s1"), domain.NoKey, 1),
		domain.Dep(id("s2"), domain.NoKey, 1),
	)
	if err := g.AddTask(id("sum"), domain.Task{Fn: add, FnID: fnAdd, Args: sumArgs, Cost: 1}); err != nil {
		return nil, err
	}
	return g, nil
}

// buildDedupDemo builds "a" and "b" as structurally identical tasks (same
// FnID, same args, same cost) with "c" depending on "b". remove_duplicates
// collapses "a" and "b" to a single survivor, but both names still appear
// in the final result map with equal values.
func buildDedupDemo() (*domain.Graph, error) {
	g := domain.NewGraph()
	id := func(name string) domain.TaskID { return domain.NewID(name) }

	dup := domain.Task{Fn: square, FnID: fnSquare, Args: domain.Single(5.0), Cost: 6}
	if err := g.AddTask(id("a"), dup); err != nil {
		return nil, err
	}
	if err := g.AddTask(id("b"), dup); err != nil {
		return nil, err
	}
	cArgs := domain.Single(domain.Dep(id("b"), domain.NoKey, 1))
	if err := g.AddTask(id("c"), domain.Task{Fn: increment, FnID: fnIncrement, Args: cArgs, Cost: 2}); err != nil {
		return nil, err
	}
	return g, nil
}

// buildFailureDemo has "t" raise, "d1" and "d2" depend on it and come back
// as dependency_error, while "sibling" is unrelated and succeeds.
func buildFailureDemo() (*domain.Graph, error) {
	g := domain.NewGraph()
	id := func(name string) domain.TaskID { return domain.NewID(name) }

	if err := g.AddTask(id("t"), domain.Task{Fn: fail, FnID: fnFail, Args: domain.Single(nil), Cost: 3}); err != nil {
		return nil, err
	}
	d1Args := domain.Single(domain.Dep(id("t"), domain.NoKey, 1))
	if err := g.AddTask(id("d1"), domain.Task{Fn: increment, FnID: fnIncrement, Args: d1Args, Cost: 1}); err != nil {
		return nil, err
	}
	d2Args := domain.Single(domain.Dep(id("t"), domain.NoKey, 1))
	if err := g.AddTask(id("d2"), domain.Task{Fn: square, FnID: fnSquare, Args: d2Args, Cost: 1}); err != nil {
		return nil, err
	}
	if err := g.AddTask(id("sibling"), domain.Task{Fn: square, FnID: fnSquare, Args: domain.Single(7.0), Cost: 2}); err != nil {
		return nil, err
	}
	return g, nil
}
