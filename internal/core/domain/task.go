package domain

import "context"

// Func is a task's function reference. It receives its already-resolved
// ArgSpec (no Dependency markers remain — see ArgSpec.Resolve) and returns a
// value or an error. Because Go closures cannot be shipped across a real
// process boundary, Func values are invoked in-process by the worker
// goroutine that owns the task (see internal/dispatch).
type Func func(ctx context.Context, args ArgSpec) (any, error)

// Task is a unit of work: a function reference, its argument specification
// (which may embed Dependency markers), and an estimated compute cost.
//
// FnID is the function's identity for duplicate-elimination purposes.
// Go closures cannot be compared structurally (two closures built from the
// same literal with different captures are different functions, and two
// closures built from different literals that happen to do the same thing
// are different functions too) so identity is an explicit, caller-chosen
// comparable token rather than something inferred from Fn itself — a
// package-level function reference is its own natural FnID, and a closure
// factory should mint a fresh FnID per distinct captured environment.
type Task struct {
	Fn   Func
	FnID any
	Args ArgSpec
	Cost float64
}

// Dependencies returns every producer TaskID this task depends on, derived
// from the Dependency markers embedded in Args.
func (t Task) Dependencies() []TaskID {
	deps := t.Args.Dependencies()
	ids := make([]TaskID, len(deps))
	for i, d := range deps {
		ids[i] = d.Producer
	}
	return ids
}
